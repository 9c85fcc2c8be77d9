package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamRequestHandler handles HTTP requests for the invite and join-request
// workflow
type TeamRequestHandler struct {
	requestService service.TeamRequestServiceInterface
}

// NewTeamRequestHandler creates a new team request handler
func NewTeamRequestHandler(requestService service.TeamRequestServiceInterface) *TeamRequestHandler {
	return &TeamRequestHandler{
		requestService: requestService,
	}
}

// Invite handles POST /team-requests/invite
// @Summary Invite a player
// @Description Invite a looking-for-team player; owner or manager of the team
// @Tags team-requests
// @Accept json
// @Produce json
// @Param invite body service.InviteRequest true "Invite data"
// @Success 201 {object} service.TeamRequestResponse "Invite created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not an owner or manager"
// @Failure 404 {object} ErrorResponse "Team or player not found"
// @Failure 409 {object} ErrorResponse "Duplicate invite, cap reached, or player not looking"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-requests/invite [post]
func (h *TeamRequestHandler) Invite(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Invite(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// RequestToJoin handles POST /team-requests/join
// @Summary Request to join a team
// @Description Apply to a recruiting team as the authenticated player
// @Tags team-requests
// @Accept json
// @Produce json
// @Param join body service.JoinRequest true "Join request data"
// @Success 201 {object} service.TeamRequestResponse "Join request created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Duplicate request, cap reached, or team not recruiting"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-requests/join [post]
func (h *TeamRequestHandler) RequestToJoin(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.RequestToJoin(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// Respond handles POST /team-requests/respond
// @Summary Respond to a team request
// @Description Accept or reject a pending invite or join request
// @Tags team-requests
// @Accept json
// @Produce json
// @Param response body service.RespondRequest true "Response data"
// @Success 200 {object} service.TeamRequestResponse "Request resolved"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer may not act on this request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved or cap reached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-requests/respond [post]
func (h *TeamRequestHandler) Respond(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.RespondRequest
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

// ListPendingByTeam handles GET /team-requests (requires team_id parameter)
// @Summary List a team's pending requests
// @Description Get pending invites and join requests; owner or manager only
// @Tags team-requests
// @Accept json
// @Produce json
// @Param team_id query int true "Team ID"
// @Success 200 {array} service.TeamRequestResponse "Pending requests"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Viewer is not an owner or manager"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-requests [get]
func (h *TeamRequestHandler) ListPendingByTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	teamID, ok := queryID(c, "team_id")
	if !ok {
		return
	}
	if teamID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id parameter is required"})
		return
	}

	requests, err := h.requestService.ListPendingByTeam(viewer, *teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
