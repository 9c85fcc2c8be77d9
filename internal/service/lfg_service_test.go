//go:build integration
// +build integration

package service_test

import (
	"testing"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type LFGServiceTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	env  *env
}

func (suite *LFGServiceTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.env = newEnv(suite.base.DB)
}

func (suite *LFGServiceTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *LFGServiceTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *LFGServiceTestSuite) TestListPlayersSkipsNotLooking() {
	game := suite.env.seedGame()
	looking := suite.env.seedUser(game.ID)

	hidden := suite.env.factories.User.Create()
	suite.Require().NoError(suite.env.userRepo.Create(hidden))
	profile := suite.env.factories.Profile.NotLooking(hidden.ID, game.ID)
	suite.Require().NoError(suite.env.profileRepo.Create(profile))

	players, err := suite.env.lfg.ListPlayers(&game.ID, nil)
	suite.Require().NoError(err)
	suite.Require().Len(players, 1)
	suite.Equal(looking.ID, players[0].UserID)
}

func (suite *LFGServiceTestSuite) TestListPlayersOrdersByWins() {
	game := suite.env.seedGame()

	low := suite.env.factories.User.Create()
	suite.Require().NoError(suite.env.userRepo.Create(low))
	suite.Require().NoError(suite.env.profileRepo.Create(suite.env.factories.Profile.WithWins(low.ID, game.ID, 2)))

	high := suite.env.factories.User.Create()
	suite.Require().NoError(suite.env.userRepo.Create(high))
	suite.Require().NoError(suite.env.profileRepo.Create(suite.env.factories.Profile.WithWins(high.ID, game.ID, 40)))

	players, err := suite.env.lfg.ListPlayers(&game.ID, nil)
	suite.Require().NoError(err)
	suite.Require().Len(players, 2)
	suite.Equal(high.ID, players[0].UserID)
}

func (suite *LFGServiceTestSuite) TestOptingInRequiresCapacity() {
	game := suite.env.seedGame()
	user := suite.env.factories.User.Create()
	suite.Require().NoError(suite.env.userRepo.Create(user))
	profile := suite.env.factories.Profile.NotLooking(user.ID, game.ID)
	suite.Require().NoError(suite.env.profileRepo.Create(profile))

	for i := 0; i < 3; i++ {
		owner := suite.env.seedUser(game.ID)
		team := suite.env.seedTeam(game.ID, owner.ID)
		suite.env.addMember(team.ID, user.ID, models.TeamRoleMember)
	}

	err := suite.env.lfg.SetLookingForTeam(user.ID, profile.ID, true)
	suite.ErrorIs(err, apperrors.ErrCapacityExceeded)

	// opting out is always allowed
	suite.NoError(suite.env.lfg.SetLookingForTeam(user.ID, profile.ID, false))
}

func (suite *LFGServiceTestSuite) TestOptInAndOut() {
	game := suite.env.seedGame()
	user := suite.env.factories.User.Create()
	suite.Require().NoError(suite.env.userRepo.Create(user))
	profile := suite.env.factories.Profile.NotLooking(user.ID, game.ID)
	suite.Require().NoError(suite.env.profileRepo.Create(profile))

	suite.Require().NoError(suite.env.lfg.SetLookingForTeam(user.ID, profile.ID, true))

	reloaded, err := suite.env.profileRepo.GetOwned(profile.ID, user.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.LookingForTeam)
}

func (suite *LFGServiceTestSuite) TestProfileOwnershipEnforced() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	stranger := suite.env.seedUser(game.ID)

	profile, err := suite.env.profileRepo.GetFirstByUser(owner.ID)
	suite.Require().NoError(err)

	err = suite.env.lfg.SetLookingForTeam(stranger.ID, profile.ID, false)
	suite.ErrorIs(err, apperrors.ErrGameProfileNotFound)
}

func TestLFGServiceSuite(t *testing.T) {
	suite.Run(t, new(LFGServiceTestSuite))
}
