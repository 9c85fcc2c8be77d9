package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LFGHandler handles HTTP requests for looking-for-group surfaces
type LFGHandler struct {
	lfgService service.LFGServiceInterface
}

// NewLFGHandler creates a new LFG handler
func NewLFGHandler(lfgService service.LFGServiceInterface) *LFGHandler {
	return &LFGHandler{
		lfgService: lfgService,
	}
}

// ListPlayers handles GET /lfg/players (optional game_id and rank_id parameters)
// @Summary List looking-for-team players
// @Description Get players flagged looking-for-team, best record first
// @Tags lfg
// @Accept json
// @Produce json
// @Param game_id query int false "Game ID to filter players"
// @Param rank_id query int false "Rank ID to filter players"
// @Success 200 {array} service.PlayerListingResponse "Successfully retrieved players"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lfg/players [get]
func (h *LFGHandler) ListPlayers(c *gin.Context) {
	gameID, ok := queryID(c, "game_id")
	if !ok {
		return
	}
	rankID, ok := queryID(c, "rank_id")
	if !ok {
		return
	}

	players, err := h.lfgService.ListPlayers(gameID, rankID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// lookingForTeamRequest is the body for the looking-for-team toggle
type lookingForTeamRequest struct {
	LookingForTeam *bool `json:"looking_for_team" binding:"required"`
}

// SetLookingForTeam handles PATCH /lfg/profiles/:profileId
// @Summary Toggle looking-for-team
// @Description Flip the looking-for-team flag on one of the caller's game profiles
// @Tags lfg
// @Accept json
// @Produce json
// @Param profileId path int true "Game profile ID"
// @Param body body lookingForTeamRequest true "Looking-for-team flag"
// @Success 200 {object} map[string]interface{} "Updated flag"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 409 {object} ErrorResponse "Team cap reached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /lfg/profiles/{profileId} [patch]
func (h *LFGHandler) SetLookingForTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	profileID, ok := pathID(c, "profileId")
	if !ok {
		return
	}

	var req lookingForTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lfgService.SetLookingForTeam(viewer, profileID, *req.LookingForTeam); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_id": profileID, "looking_for_team": *req.LookingForTeam})
}
