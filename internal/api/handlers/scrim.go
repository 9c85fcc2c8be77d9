package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScrimHandler handles HTTP requests for scrim listings
type ScrimHandler struct {
	scrimService service.ScrimServiceInterface
}

// NewScrimHandler creates a new scrim handler
func NewScrimHandler(scrimService service.ScrimServiceInterface) *ScrimHandler {
	return &ScrimHandler{
		scrimService: scrimService,
	}
}

// CreateScrim handles POST /scrims
// @Summary Post a scrim listing
// @Description Create an open scrim on behalf of the host team; owner or manager
// @Tags scrims
// @Accept json
// @Produce json
// @Param scrim body service.CreateScrimRequest true "Scrim data"
// @Success 201 {object} service.ScrimResponse "Scrim created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not an owner or manager"
// @Failure 404 {object} ErrorResponse "Host team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims [post]
func (h *ScrimHandler) CreateScrim(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.CreateScrimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scrim, err := h.scrimService.Create(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, scrim)
}

// GetScrim handles GET /scrims/:id
// @Summary Get scrim by ID
// @Tags scrims
// @Accept json
// @Produce json
// @Param id path int true "Scrim ID"
// @Success 200 {object} service.ScrimResponse "Successfully retrieved scrim"
// @Failure 400 {object} ErrorResponse "Invalid scrim ID"
// @Failure 404 {object} ErrorResponse "Scrim not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims/{id} [get]
func (h *ScrimHandler) GetScrim(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	scrim, err := h.scrimService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scrim)
}

// UpdateScrimCode handles PATCH /scrims/:id/code
// @Summary Set the scrim code
// @Description Set the lobby code shared with the matched team; host owner or manager
// @Tags scrims
// @Accept json
// @Produce json
// @Param id path int true "Scrim ID"
// @Param body body service.UpdateScrimCodeRequest true "Scrim code"
// @Success 200 {object} service.ScrimResponse "Code updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not a host owner or manager"
// @Failure 404 {object} ErrorResponse "Scrim not found"
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims/{id}/code [patch]
func (h *ScrimHandler) UpdateScrimCode(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateScrimCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scrim, err := h.scrimService.UpdateCode(viewer, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scrim)
}

// DisbandScrim handles DELETE /scrims/:id
// @Summary Disband a scrim
// @Description Delete a scrim and all of its requests; host owner or manager
// @Tags scrims
// @Accept json
// @Produce json
// @Param id path int true "Scrim ID"
// @Success 204 "Scrim disbanded"
// @Failure 400 {object} ErrorResponse "Invalid scrim ID"
// @Failure 403 {object} ErrorResponse "Viewer is not a host owner or manager"
// @Failure 404 {object} ErrorResponse "Scrim not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims/{id} [delete]
func (h *ScrimHandler) DisbandScrim(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scrimService.Disband(viewer, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LeaveScrim handles POST /scrims/:id/leave
// @Summary Leave a matched scrim
// @Description Back the matched opposing team out, reopening the scrim; the opposing team's owner or manager
// @Tags scrims
// @Accept json
// @Produce json
// @Param id path int true "Scrim ID"
// @Success 204 "Left the scrim"
// @Failure 400 {object} ErrorResponse "Invalid scrim ID"
// @Failure 403 {object} ErrorResponse "Viewer is not on the matched team"
// @Failure 404 {object} ErrorResponse "Scrim not found"
// @Failure 409 {object} ErrorResponse "Scrim is not matched or host attempted to leave"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims/{id}/leave [post]
func (h *ScrimHandler) LeaveScrim(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scrimService.Leave(viewer, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOpenScrims handles GET /scrims (optional game_id parameter)
// @Summary List open scrims
// @Description Get open scrim listings, optionally filtered by game
// @Tags scrims
// @Accept json
// @Produce json
// @Param game_id query int false "Game ID to filter scrims"
// @Success 200 {array} service.ScrimResponse "Successfully retrieved scrims"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims [get]
func (h *ScrimHandler) ListOpenScrims(c *gin.Context) {
	gameID, ok := queryID(c, "game_id")
	if !ok {
		return
	}

	scrims, err := h.scrimService.ListOpen(gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scrims)
}
