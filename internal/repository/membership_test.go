//go:build integration
// +build integration

package repository

import (
	"testing"

	"scrimhub-backend/internal/database/models"
	"scrimhub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet

	team *models.Team
	user *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	game := suite.factories.Game.Create()
	suite.Require().NoError(db.Create(game).Error)

	suite.user = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(db).Create(suite.user))

	suite.team = suite.factories.Team.Create(game.ID)
	suite.Require().NoError(NewTeamRepository(db).Create(suite.team))
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertIsIdempotent tests that a duplicate (team, user) insert is a no-op
func (suite *MembershipRepositoryTestSuite) TestUpsertIsIdempotent() {
	first := suite.factories.Membership.Member(suite.team.ID, suite.user.ID)
	suite.Require().NoError(suite.repo.Upsert(first))

	// second insert for the same pair must not error or change the role
	second := suite.factories.Membership.Manager(suite.team.ID, suite.user.ID)
	suite.Require().NoError(suite.repo.Upsert(second))

	membership, err := suite.repo.GetByTeamAndUser(suite.team.ID, suite.user.ID)
	suite.NoError(err)
	suite.Equal(first.ID, membership.ID)
	suite.Equal(models.TeamRoleMember, membership.Role)
}

// TestCountByUser tests the capacity counter
func (suite *MembershipRepositoryTestSuite) TestCountByUser() {
	count, err := suite.repo.CountByUser(suite.user.ID)
	suite.NoError(err)
	suite.Zero(count)

	suite.Require().NoError(suite.repo.Create(suite.factories.Membership.Member(suite.team.ID, suite.user.ID)))

	count, err = suite.repo.CountByUser(suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdateRole tests promoting a member
func (suite *MembershipRepositoryTestSuite) TestUpdateRole() {
	membership := suite.factories.Membership.Member(suite.team.ID, suite.user.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	suite.Require().NoError(suite.repo.UpdateRole(membership.ID, models.TeamRoleManager))

	reloaded, err := suite.repo.GetByID(membership.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleManager, reloaded.Role)
}

// TestDeleteByTeam tests the disband cascade
func (suite *MembershipRepositoryTestSuite) TestDeleteByTeam() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Membership.Owner(suite.team.ID, suite.user.ID)))

	suite.Require().NoError(suite.repo.DeleteByTeam(suite.team.ID))

	count, err := suite.repo.CountByUser(suite.user.ID)
	suite.NoError(err)
	suite.Zero(count)
}

func TestMembershipRepositorySuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
