//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"scrimhub-backend/internal/database/models"
	"scrimhub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TeamRequestRepositoryTestSuite tests the TeamRequestRepository
type TeamRequestRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRequestRepository
	factories     *testutils.FactorySet

	team    *models.Team
	owner   *models.User
	invitee *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRequestRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRequestRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRequestRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRequestRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	game := suite.factories.Game.Create()
	suite.Require().NoError(db.Create(game).Error)

	suite.owner = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(db).Create(suite.owner))
	suite.invitee = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(db).Create(suite.invitee))

	suite.team = suite.factories.Team.Create(game.ID)
	suite.Require().NoError(NewTeamRepository(db).Create(suite.team))
}

// TearDownTest runs after each test
func (suite *TeamRequestRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRequestRepositoryTestSuite) pendingInvite() *models.TeamRequest {
	request := &models.TeamRequest{
		Kind:            models.TeamRequestInvite,
		Status:          models.RequestStatusPending,
		TeamID:          suite.team.ID,
		UserID:          suite.invitee.ID,
		CreatedByUserID: suite.owner.ID,
	}
	suite.Require().NoError(suite.repo.Create(request))
	return request
}

// TestMarkRespondedOnlyOnce tests that resolution is first-writer-wins
func (suite *TeamRequestRepositoryTestSuite) TestMarkRespondedOnlyOnce() {
	request := suite.pendingInvite()

	ok, err := suite.repo.MarkResponded(request.ID, models.RequestStatusAccepted, time.Now())
	suite.NoError(err)
	suite.True(ok)

	// the row is no longer pending, so a second resolution does not apply
	ok, err = suite.repo.MarkResponded(request.ID, models.RequestStatusRejected, time.Now())
	suite.NoError(err)
	suite.False(ok)

	reloaded, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusAccepted, reloaded.Status)
	suite.NotNil(reloaded.RespondedAt)
}

// TestPendingExists tests the duplicate guard per (team, user, kind)
func (suite *TeamRequestRepositoryTestSuite) TestPendingExists() {
	suite.pendingInvite()

	exists, err := suite.repo.PendingExists(suite.team.ID, suite.invitee.ID, models.TeamRequestInvite)
	suite.NoError(err)
	suite.True(exists)

	// a join request for the same pair is a different kind
	exists, err = suite.repo.PendingExists(suite.team.ID, suite.invitee.ID, models.TeamRequestJoin)
	suite.NoError(err)
	suite.False(exists)
}

// TestPendingExistsIgnoresResolved tests that terminal requests do not block
func (suite *TeamRequestRepositoryTestSuite) TestPendingExistsIgnoresResolved() {
	request := suite.pendingInvite()
	ok, err := suite.repo.MarkResponded(request.ID, models.RequestStatusRejected, time.Now())
	suite.NoError(err)
	suite.True(ok)

	exists, err := suite.repo.PendingExists(suite.team.ID, suite.invitee.ID, models.TeamRequestInvite)
	suite.NoError(err)
	suite.False(exists)
}

// TestListPendingByTeam tests listing with preloads
func (suite *TeamRequestRepositoryTestSuite) TestListPendingByTeam() {
	request := suite.pendingInvite()

	pending, err := suite.repo.ListPendingByTeam(suite.team.ID)
	suite.NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(request.ID, pending[0].ID)
	suite.Require().NotNil(pending[0].User)
	suite.Equal(suite.invitee.Username, pending[0].User.Username)
}

func TestTeamRequestRepositorySuite(t *testing.T) {
	suite.Run(t, new(TeamRequestRepositoryTestSuite))
}
