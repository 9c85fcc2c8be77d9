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

type NotificationServiceTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	env  *env
}

func (suite *NotificationServiceTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.env = newEnv(suite.base.DB)
}

func (suite *NotificationServiceTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *NotificationServiceTestSuite) seedNotifications(recipientID int64, count int) []models.Notification {
	notifications := make([]models.Notification, 0, count)
	for i := 0; i < count; i++ {
		n := models.Notification{
			RecipientID: recipientID,
			Type:        models.NotificationTeamInvite,
			Title:       "Team Invite",
			Body:        "You have been invited.",
		}
		suite.Require().NoError(suite.env.notificationRepo.Create(&n))
		notifications = append(notifications, n)
	}
	return notifications
}

func (suite *NotificationServiceTestSuite) TestFeedCountsTotalsNotPage() {
	game := suite.env.seedGame()
	user := suite.env.seedUser(game.ID)
	suite.env.seedTeam(game.ID, user.ID)
	suite.seedNotifications(user.ID, 20)

	feed, err := suite.env.feed.ListUnread(user.ID)
	suite.Require().NoError(err)
	suite.Len(feed.Notifications, 15)
	suite.Equal(int64(20), feed.UnreadCount)
	suite.Equal(int64(1), feed.TeamCount)
}

func (suite *NotificationServiceTestSuite) TestFeedNewestFirst() {
	game := suite.env.seedGame()
	user := suite.env.seedUser(game.ID)
	seeded := suite.seedNotifications(user.ID, 3)

	feed, err := suite.env.feed.ListUnread(user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(feed.Notifications, 3)
	suite.Equal(seeded[2].ID, feed.Notifications[0].ID)
	suite.Equal(seeded[0].ID, feed.Notifications[2].ID)
}

func (suite *NotificationServiceTestSuite) TestMarkReadIsIdempotent() {
	game := suite.env.seedGame()
	user := suite.env.seedUser(game.ID)
	seeded := suite.seedNotifications(user.ID, 2)

	remaining, err := suite.env.feed.MarkRead(user.ID, seeded[0].ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), remaining)

	// a second read receipt is a no-op, not an error
	remaining, err = suite.env.feed.MarkRead(user.ID, seeded[0].ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), remaining)
}

func (suite *NotificationServiceTestSuite) TestMarkReadScopedToRecipient() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	other := suite.env.seedUser(game.ID)
	seeded := suite.seedNotifications(owner.ID, 1)

	_, err := suite.env.feed.MarkRead(other.ID, seeded[0].ID)
	suite.ErrorIs(err, apperrors.ErrNotificationNotFound)
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
