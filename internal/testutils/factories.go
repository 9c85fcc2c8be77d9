package testutils

import (
	"fmt"
	"sync/atomic"

	"scrimhub-backend/internal/database/models"
)

// seq issues unique suffixes so factory output never collides on unique
// columns within a test run
var seq int64

func next() int64 {
	return atomic.AddInt64(&seq, 1)
}

// FactorySet bundles every factory for suites that need several
type FactorySet struct {
	Game       *GameFactory
	User       *UserFactory
	Profile    *GameProfileFactory
	Team       *TeamFactory
	Membership *MembershipFactory
	Scrim      *ScrimFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Game:       NewGameFactory(),
		User:       NewUserFactory(),
		Profile:    NewGameProfileFactory(),
		Team:       NewTeamFactory(),
		Membership: NewMembershipFactory(),
		Scrim:      NewScrimFactory(),
	}
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	n := next()
	return &models.Game{
		Name:      fmt.Sprintf("Test Game %d", n),
		ShortCode: fmt.Sprintf("TG%d", n),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Username: fmt.Sprintf("player%d", next()),
		Region:   models.RegionNA,
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithRegion sets a custom region
func (f *UserFactory) WithRegion(region models.Region) *models.User {
	user := f.Create()
	user.Region = region
	return user
}

// GameProfileFactory provides methods to create test UserGameProfile data
type GameProfileFactory struct{}

// NewGameProfileFactory creates a new GameProfileFactory
func NewGameProfileFactory() *GameProfileFactory {
	return &GameProfileFactory{}
}

// Create creates a looking-for-team profile for a (user, game) pair
func (f *GameProfileFactory) Create(userID, gameID int64) *models.UserGameProfile {
	return &models.UserGameProfile{
		UserID:         userID,
		GameID:         gameID,
		LookingForTeam: true,
		Wins:           0,
	}
}

// NotLooking creates a profile with the looking-for-team flag off
func (f *GameProfileFactory) NotLooking(userID, gameID int64) *models.UserGameProfile {
	profile := f.Create(userID, gameID)
	profile.LookingForTeam = false
	return profile
}

// WithWins creates a profile with a win record
func (f *GameProfileFactory) WithWins(userID, gameID int64, wins int) *models.UserGameProfile {
	profile := f.Create(userID, gameID)
	profile.Wins = wins
	return profile
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a recruiting test Team for a game
func (f *TeamFactory) Create(gameID int64) *models.Team {
	n := next()
	return &models.Team{
		Name:         fmt.Sprintf("Test Team %d", n),
		Slug:         fmt.Sprintf("test-team-%d", n),
		Region:       models.RegionNA,
		GameID:       gameID,
		IsRecruiting: true,
	}
}

// NotRecruiting creates a team closed to join requests
func (f *TeamFactory) NotRecruiting(gameID int64) *models.Team {
	team := f.Create(gameID)
	team.IsRecruiting = false
	return team
}

// WithName sets a custom name and matching slug
func (f *TeamFactory) WithName(gameID int64, name string) *models.Team {
	team := f.Create(gameID)
	team.Name = name
	team.Slug = fmt.Sprintf("named-team-%d", next())
	return team
}

// MembershipFactory provides methods to create test TeamMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Owner creates an owner membership
func (f *MembershipFactory) Owner(teamID, userID int64) *models.TeamMembership {
	return &models.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   models.TeamRoleOwner,
	}
}

// Manager creates a manager membership
func (f *MembershipFactory) Manager(teamID, userID int64) *models.TeamMembership {
	return &models.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   models.TeamRoleManager,
	}
}

// Member creates a plain member membership
func (f *MembershipFactory) Member(teamID, userID int64) *models.TeamMembership {
	return &models.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   models.TeamRoleMember,
	}
}

// ScrimFactory provides methods to create test Scrim data
type ScrimFactory struct{}

// NewScrimFactory creates a new ScrimFactory
func NewScrimFactory() *ScrimFactory {
	return &ScrimFactory{}
}

// Create creates an open test Scrim hosted by a team
func (f *ScrimFactory) Create(hostTeamID, createdByUserID int64) *models.Scrim {
	return &models.Scrim{
		HostTeamID:      hostTeamID,
		BestOf:          5,
		Gamemode:        "Hardpoint",
		Map:             "Karachi",
		TeamSize:        4,
		Ruleset:         models.RulesetCDL,
		Status:          models.ScrimStatusOpen,
		CreatedByUserID: createdByUserID,
	}
}

// Matched creates a scrim already in the matched state
func (f *ScrimFactory) Matched(hostTeamID, createdByUserID int64) *models.Scrim {
	scrim := f.Create(hostTeamID, createdByUserID)
	scrim.Status = models.ScrimStatusMatched
	return scrim
}
