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

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	factories     *testutils.FactorySet

	recipient *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.recipient = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.recipient))
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) unread(count int) []models.Notification {
	notifications := make([]models.Notification, 0, count)
	for i := 0; i < count; i++ {
		n := models.Notification{
			RecipientID: suite.recipient.ID,
			Type:        models.NotificationTeamInvite,
			Title:       "Team Invite",
			Body:        "You have been invited.",
		}
		suite.Require().NoError(suite.repo.Create(&n))
		notifications = append(notifications, n)
	}
	return notifications
}

// TestListUnreadHonorsLimit tests that the page is capped but the count is not
func (suite *NotificationRepositoryTestSuite) TestListUnreadHonorsLimit() {
	suite.unread(5)

	page, err := suite.repo.ListUnread(suite.recipient.ID, 3)
	suite.NoError(err)
	suite.Len(page, 3)

	total, err := suite.repo.CountUnread(suite.recipient.ID)
	suite.NoError(err)
	suite.Equal(int64(5), total)
}

// TestMarkReadConditional tests that the read receipt applies once and only
// for the recipient
func (suite *NotificationRepositoryTestSuite) TestMarkReadConditional() {
	notifications := suite.unread(1)
	id := notifications[0].ID

	ok, err := suite.repo.MarkRead(id, suite.recipient.ID+999, time.Now())
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.repo.MarkRead(id, suite.recipient.ID, time.Now())
	suite.NoError(err)
	suite.True(ok)

	// already read
	ok, err = suite.repo.MarkRead(id, suite.recipient.ID, time.Now())
	suite.NoError(err)
	suite.False(ok)

	total, err := suite.repo.CountUnread(suite.recipient.ID)
	suite.NoError(err)
	suite.Zero(total)
}

// TestMarkReadByTeamRequest tests clearing workflow notifications on resolve
func (suite *NotificationRepositoryTestSuite) TestMarkReadByTeamRequest() {
	db := suite.baseTestSuite.DB
	game := suite.factories.Game.Create()
	suite.Require().NoError(db.Create(game).Error)
	team := suite.factories.Team.Create(game.ID)
	suite.Require().NoError(NewTeamRepository(db).Create(team))
	request := &models.TeamRequest{
		Kind:            models.TeamRequestInvite,
		Status:          models.RequestStatusPending,
		TeamID:          team.ID,
		UserID:          suite.recipient.ID,
		CreatedByUserID: suite.recipient.ID,
	}
	suite.Require().NoError(NewTeamRequestRepository(db).Create(request))

	n := models.Notification{
		RecipientID:   suite.recipient.ID,
		Type:          models.NotificationTeamInvite,
		Title:         "Team Invite",
		Body:          "You have been invited.",
		TeamRequestID: &request.ID,
	}
	suite.Require().NoError(suite.repo.Create(&n))
	suite.unread(1)

	suite.Require().NoError(suite.repo.MarkReadByTeamRequest(request.ID, suite.recipient.ID, time.Now()))

	// only the request-linked notification was cleared
	total, err := suite.repo.CountUnread(suite.recipient.ID)
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

func TestNotificationRepositorySuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
