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

// ScrimRepositoryTestSuite tests the ScrimRepository and ScrimRequestRepository
type ScrimRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScrimRepository
	requestRepo   *ScrimRequestRepository
	factories     *testutils.FactorySet

	game     *models.Game
	hostTeam *models.Team
	oppTeam  *models.Team
	host     *models.User
	opponent *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ScrimRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScrimRepository(suite.baseTestSuite.DB)
	suite.requestRepo = NewScrimRequestRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScrimRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScrimRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.game = suite.factories.Game.Create()
	suite.Require().NoError(db.Create(suite.game).Error)

	userRepo := NewUserRepository(db)
	suite.host = suite.factories.User.Create()
	suite.Require().NoError(userRepo.Create(suite.host))
	suite.opponent = suite.factories.User.Create()
	suite.Require().NoError(userRepo.Create(suite.opponent))

	teamRepo := NewTeamRepository(db)
	suite.hostTeam = suite.factories.Team.Create(suite.game.ID)
	suite.Require().NoError(teamRepo.Create(suite.hostTeam))
	suite.oppTeam = suite.factories.Team.Create(suite.game.ID)
	suite.Require().NoError(teamRepo.Create(suite.oppTeam))
}

// TearDownTest runs after each test
func (suite *ScrimRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ScrimRepositoryTestSuite) openScrim() *models.Scrim {
	scrim := suite.factories.Scrim.Create(suite.hostTeam.ID, suite.host.ID)
	suite.Require().NoError(suite.repo.Create(scrim))
	return scrim
}

func (suite *ScrimRepositoryTestSuite) pendingRequest(scrimID int64) *models.ScrimRequest {
	request := &models.ScrimRequest{
		ScrimID:           scrimID,
		TeamID:            suite.oppTeam.ID,
		RequestedByUserID: suite.opponent.ID,
		Status:            models.RequestStatusPending,
		ParticipantIDs:    models.Int64List{suite.opponent.ID},
	}
	suite.Require().NoError(suite.requestRepo.Create(request))
	return request
}

// TestTransitionStatus tests the conditional status flip
func (suite *ScrimRepositoryTestSuite) TestTransitionStatus() {
	scrim := suite.openScrim()

	ok, err := suite.repo.TransitionStatus(scrim.ID, models.ScrimStatusOpen, models.ScrimStatusMatched)
	suite.NoError(err)
	suite.True(ok)

	// already matched, the same transition no longer applies
	ok, err = suite.repo.TransitionStatus(scrim.ID, models.ScrimStatusOpen, models.ScrimStatusMatched)
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.repo.TransitionStatus(scrim.ID, models.ScrimStatusMatched, models.ScrimStatusOpen)
	suite.NoError(err)
	suite.True(ok)
}

// TestListOpenFiltersByGameAndStatus tests the browse query
func (suite *ScrimRepositoryTestSuite) TestListOpenFiltersByGameAndStatus() {
	open := suite.openScrim()
	matched := suite.factories.Scrim.Matched(suite.hostTeam.ID, suite.host.ID)
	suite.Require().NoError(suite.repo.Create(matched))

	scrims, err := suite.repo.ListOpen(nil)
	suite.NoError(err)
	suite.Require().Len(scrims, 1)
	suite.Equal(open.ID, scrims[0].ID)
	suite.Require().NotNil(scrims[0].HostTeam)
	suite.Equal(suite.hostTeam.ID, scrims[0].HostTeam.ID)

	otherGameID := suite.game.ID + 1000
	scrims, err = suite.repo.ListOpen(&otherGameID)
	suite.NoError(err)
	suite.Empty(scrims)
}

// TestMarkRespondedRecordsCodeSent tests resolution with the code flag
func (suite *ScrimRepositoryTestSuite) TestMarkRespondedRecordsCodeSent() {
	scrim := suite.openScrim()
	request := suite.pendingRequest(scrim.ID)

	ok, err := suite.requestRepo.MarkResponded(request.ID, models.RequestStatusAccepted, true, time.Now())
	suite.NoError(err)
	suite.True(ok)

	reloaded, err := suite.requestRepo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusAccepted, reloaded.Status)
	suite.True(reloaded.CodeSent)

	ok, err = suite.requestRepo.MarkResponded(request.ID, models.RequestStatusRejected, false, time.Now())
	suite.NoError(err)
	suite.False(ok)
}

// TestCancelOnlyFromAccepted tests that cancel clears the snapshot and only
// applies to accepted requests
func (suite *ScrimRepositoryTestSuite) TestCancelOnlyFromAccepted() {
	scrim := suite.openScrim()
	request := suite.pendingRequest(scrim.ID)

	ok, err := suite.requestRepo.Cancel(request.ID)
	suite.NoError(err)
	suite.False(ok)

	_, err = suite.requestRepo.MarkResponded(request.ID, models.RequestStatusAccepted, false, time.Now())
	suite.Require().NoError(err)

	ok, err = suite.requestRepo.Cancel(request.ID)
	suite.NoError(err)
	suite.True(ok)

	reloaded, err := suite.requestRepo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusCancelled, reloaded.Status)
	suite.Empty(reloaded.ParticipantIDs)
}

// TestPendingExists tests the one-pending-application-per-team guard
func (suite *ScrimRepositoryTestSuite) TestPendingExists() {
	scrim := suite.openScrim()
	request := suite.pendingRequest(scrim.ID)

	exists, err := suite.requestRepo.PendingExists(scrim.ID, suite.oppTeam.ID)
	suite.NoError(err)
	suite.True(exists)

	_, err = suite.requestRepo.MarkResponded(request.ID, models.RequestStatusRejected, false, time.Now())
	suite.Require().NoError(err)

	exists, err = suite.requestRepo.PendingExists(scrim.ID, suite.oppTeam.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestDeleteByScrim tests the disband cascade
func (suite *ScrimRepositoryTestSuite) TestDeleteByScrim() {
	scrim := suite.openScrim()
	suite.pendingRequest(scrim.ID)

	suite.Require().NoError(suite.requestRepo.DeleteByScrim(scrim.ID))

	count, err := suite.requestRepo.CountByScrim(scrim.ID, nil)
	suite.NoError(err)
	suite.Zero(count)
}

func TestScrimRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScrimRepositoryTestSuite))
}
