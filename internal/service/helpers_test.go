//go:build integration
// +build integration

package service_test

import (
	"scrimhub-backend/internal/database/models"
	"scrimhub-backend/internal/repository"
	"scrimhub-backend/internal/service"
	"scrimhub-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// env bundles everything a service integration suite needs against the
// shared database
type env struct {
	db        *gorm.DB
	factories *testutils.FactorySet

	userRepo         *repository.UserRepository
	profileRepo      *repository.GameProfileRepository
	teamRepo         *repository.TeamRepository
	membershipRepo   *repository.MembershipRepository
	teamRequestRepo  *repository.TeamRequestRepository
	scrimRepo        *repository.ScrimRepository
	scrimRequestRepo *repository.ScrimRequestRepository
	notificationRepo *repository.NotificationRepository

	capacity     *service.CapacityPolicy
	teams        *service.TeamService
	teamRequests *service.TeamRequestService
	scrims       *service.ScrimService
	scrimReqs    *service.ScrimRequestService
	feed         *service.NotificationService
	lfg          *service.LFGService
}

func newEnv(db *gorm.DB) *env {
	v := validator.New()

	e := &env{
		db:               db,
		factories:        testutils.NewFactorySet(),
		userRepo:         repository.NewUserRepository(db),
		profileRepo:      repository.NewGameProfileRepository(db),
		teamRepo:         repository.NewTeamRepository(db),
		membershipRepo:   repository.NewMembershipRepository(db),
		teamRequestRepo:  repository.NewTeamRequestRepository(db),
		scrimRepo:        repository.NewScrimRepository(db),
		scrimRequestRepo: repository.NewScrimRequestRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
	}

	e.capacity = service.NewCapacityPolicy(e.membershipRepo, e.profileRepo)
	e.teams = service.NewTeamService(db, e.teamRepo, e.membershipRepo, e.profileRepo, e.capacity, v)
	e.teamRequests = service.NewTeamRequestService(db, e.teamRepo, e.userRepo, e.profileRepo, e.teamRequestRepo, e.membershipRepo, e.notificationRepo, e.capacity, v)
	e.scrims = service.NewScrimService(db, e.scrimRepo, e.scrimRequestRepo, e.teamRepo, v)
	e.scrimReqs = service.NewScrimRequestService(db, e.scrimRequestRepo, e.scrimRepo, e.teamRepo, e.userRepo, e.notificationRepo, v)
	e.feed = service.NewNotificationService(e.notificationRepo, e.membershipRepo, 15)
	e.lfg = service.NewLFGService(e.profileRepo, e.capacity)
	return e
}

// seedUser persists a user with a looking-for-team profile for the game
func (e *env) seedUser(gameID int64) *models.User {
	user := e.factories.User.Create()
	if err := e.userRepo.Create(user); err != nil {
		panic(err)
	}
	profile := e.factories.Profile.Create(user.ID, gameID)
	if err := e.profileRepo.Create(profile); err != nil {
		panic(err)
	}
	return user
}

// seedGame persists a game
func (e *env) seedGame() *models.Game {
	game := e.factories.Game.Create()
	if err := e.db.Create(game).Error; err != nil {
		panic(err)
	}
	return game
}

// seedTeam persists a team owned by ownerID
func (e *env) seedTeam(gameID, ownerID int64) *models.Team {
	team := e.factories.Team.Create(gameID)
	if err := e.teamRepo.Create(team); err != nil {
		panic(err)
	}
	if err := e.membershipRepo.Create(e.factories.Membership.Owner(team.ID, ownerID)); err != nil {
		panic(err)
	}
	return team
}

// addMember persists a membership with the given role
func (e *env) addMember(teamID, userID int64, role models.TeamRole) *models.TeamMembership {
	membership := &models.TeamMembership{TeamID: teamID, UserID: userID, Role: role}
	if err := e.membershipRepo.Create(membership); err != nil {
		panic(err)
	}
	return membership
}

// notificationsFor returns all notifications addressed to a user
func (e *env) notificationsFor(userID int64) []models.Notification {
	var notifications []models.Notification
	if err := e.db.Where("recipient_id = ?", userID).Order("id ASC").Find(&notifications).Error; err != nil {
		panic(err)
	}
	return notifications
}
