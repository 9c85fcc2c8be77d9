package service

import (
	"scrimhub-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(viewerID int64, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id int64) (*TeamResponse, error)
	GetBySlug(slug string) (*TeamResponse, error)
	Update(viewerID int64, slug string, req *UpdateTeamRequest) (*TeamResponse, error)
	SetRecruiting(viewerID int64, slug string, isRecruiting bool) error
	Leave(viewerID int64, slug string) error
	Kick(viewerID int64, slug string, membershipID int64) error
	ChangeRole(viewerID int64, slug string, membershipID int64, req *ChangeRoleRequest) (models.TeamRole, error)
	Disband(viewerID int64, slug string) error
	ListRecruiting(gameID, rankID *int64) ([]TeamResponse, error)
}

// TeamRequestServiceInterface defines the interface for the invite and
// join-request workflow
type TeamRequestServiceInterface interface {
	Invite(viewerID int64, req *InviteRequest) (*TeamRequestResponse, error)
	RequestToJoin(viewerID int64, req *JoinRequest) (*TeamRequestResponse, error)
	Respond(viewerID int64, req *RespondRequest) (*TeamRequestResponse, error)
	ListPendingByTeam(viewerID, teamID int64) ([]TeamRequestResponse, error)
}

// ScrimServiceInterface defines the interface for scrim listings
type ScrimServiceInterface interface {
	Create(viewerID int64, req *CreateScrimRequest) (*ScrimResponse, error)
	GetByID(id int64) (*ScrimResponse, error)
	UpdateCode(viewerID, scrimID int64, req *UpdateScrimCodeRequest) (*ScrimResponse, error)
	Disband(viewerID, scrimID int64) error
	Leave(viewerID, scrimID int64) error
	ListOpen(gameID *int64) ([]ScrimResponse, error)
}

// ScrimRequestServiceInterface defines the interface for scrim applications
type ScrimRequestServiceInterface interface {
	Create(viewerID int64, req *CreateScrimRequestInput) (*ScrimRequestResponse, error)
	Respond(viewerID int64, req *RespondScrimRequestInput) (*ScrimRequestResponse, error)
	ListPendingByScrim(viewerID, scrimID int64) ([]ScrimRequestResponse, error)
}

// NotificationServiceInterface defines the interface for the unread feed
type NotificationServiceInterface interface {
	ListUnread(viewerID int64) (*NotificationFeedResponse, error)
	MarkRead(viewerID, notificationID int64) (int64, error)
}

// LFGServiceInterface defines the interface for looking-for-group surfaces
type LFGServiceInterface interface {
	ListPlayers(gameID, rankID *int64) ([]PlayerListingResponse, error)
	SetLookingForTeam(viewerID, profileID int64, looking bool) error
}
