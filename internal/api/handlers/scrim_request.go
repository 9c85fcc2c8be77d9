package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScrimRequestHandler handles HTTP requests for scrim applications
type ScrimRequestHandler struct {
	requestService service.ScrimRequestServiceInterface
}

// NewScrimRequestHandler creates a new scrim request handler
func NewScrimRequestHandler(requestService service.ScrimRequestServiceInterface) *ScrimRequestHandler {
	return &ScrimRequestHandler{
		requestService: requestService,
	}
}

// Create handles POST /scrim-requests
// @Summary Apply to a scrim
// @Description Apply to an open scrim on behalf of a team; the team's owner or manager
// @Tags scrim-requests
// @Accept json
// @Produce json
// @Param request body service.CreateScrimRequestInput true "Application data"
// @Success 201 {object} service.ScrimRequestResponse "Application created"
// @Failure 400 {object} ErrorResponse "Invalid request body or participant selection"
// @Failure 403 {object} ErrorResponse "Viewer is not an owner or manager"
// @Failure 404 {object} ErrorResponse "Scrim or team not found"
// @Failure 409 {object} ErrorResponse "Scrim not open, own scrim, or duplicate application"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrim-requests [post]
func (h *ScrimRequestHandler) Create(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.CreateScrimRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Create(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// Respond handles POST /scrim-requests/respond
// @Summary Respond to a scrim application
// @Description Accept or reject a pending application; the host team's owner or manager
// @Tags scrim-requests
// @Accept json
// @Produce json
// @Param response body service.RespondScrimRequestInput true "Response data"
// @Success 200 {object} service.ScrimRequestResponse "Application resolved"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not a host owner or manager"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Already resolved or scrim no longer open"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrim-requests/respond [post]
func (h *ScrimRequestHandler) Respond(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.RespondScrimRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Respond(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListPendingByScrim handles GET /scrims/:id/requests
// @Summary List a scrim's pending applications
// @Description Get pending applications; host owner or manager only
// @Tags scrim-requests
// @Accept json
// @Produce json
// @Param id path int true "Scrim ID"
// @Success 200 {array} service.ScrimRequestResponse "Pending applications"
// @Failure 400 {object} ErrorResponse "Invalid scrim ID"
// @Failure 403 {object} ErrorResponse "Viewer is not a host owner or manager"
// @Failure 404 {object} ErrorResponse "Scrim not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scrims/{id}/requests [get]
func (h *ScrimRequestHandler) ListPendingByScrim(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	scrimID, ok := pathID(c, "id")
	if !ok {
		return
	}

	requests, err := h.requestService.ListPendingByScrim(viewer, scrimID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
