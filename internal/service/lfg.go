package service

import (
	"errors"
	"fmt"

	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/repository"

	"gorm.io/gorm"
)

// LFGService serves the looking-for-group surfaces: players looking for a
// team and teams looking for players
type LFGService struct {
	profileRepo *repository.GameProfileRepository
	capacity    *CapacityPolicy
}

// NewLFGService creates a new LFG service
func NewLFGService(profileRepo *repository.GameProfileRepository, capacity *CapacityPolicy) *LFGService {
	return &LFGService{
		profileRepo: profileRepo,
		capacity:    capacity,
	}
}

// PlayerListingResponse represents one looking-for-team player
type PlayerListingResponse struct {
	ProfileID int64  `json:"profile_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Region    string `json:"region,omitempty"`
	GameID    int64  `json:"game_id"`
	GameName  string `json:"game_name,omitempty"`
	RankID    *int64 `json:"rank_id,omitempty"`
	Wins      int    `json:"wins"`
}

// ListPlayers returns looking-for-team players, optionally filtered by game
// and rank, best record first
func (s *LFGService) ListPlayers(gameID, rankID *int64) ([]PlayerListingResponse, error) {
	profiles, err := s.profileRepo.ListLookingForTeam(gameID, rankID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	listings := make([]PlayerListingResponse, len(profiles))
	for i, profile := range profiles {
		listing := PlayerListingResponse{
			ProfileID: profile.ID,
			UserID:    profile.UserID,
			GameID:    profile.GameID,
			RankID:    profile.RankID,
			Wins:      profile.Wins,
		}
		if profile.User != nil {
			listing.Username = profile.User.Username
			listing.Region = string(profile.User.Region)
		}
		if profile.Game != nil {
			listing.GameName = profile.Game.Name
		}
		listings[i] = listing
	}
	return listings, nil
}

// SetLookingForTeam toggles the viewer's own looking-for-team flag on one of
// their game profiles. Turning it on requires spare team capacity.
func (s *LFGService) SetLookingForTeam(viewerID, profileID int64, looking bool) error {
	profile, err := s.profileRepo.GetOwned(profileID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGameProfileNotFound
		}
		return fmt.Errorf("failed to load game profile: %w", err)
	}

	if looking && !profile.LookingForTeam {
		if err := s.capacity.CheckTeamCapacity(viewerID); err != nil {
			return err
		}
	}

	return s.profileRepo.SetLookingForTeam(profile.ID, looking)
}
