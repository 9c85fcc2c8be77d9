package handlers

import (
	"net/http"

	"scrimhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team; the caller becomes its owner
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name taken or team cap reached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(viewer, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:slug
// @Summary Get team by slug
// @Description Get a team and its roster by slug
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:slug
// @Summary Update a team
// @Description Update a team's profile; owner only
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not the owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team name taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(viewer, c.Param("slug"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// recruitingRequest is the body for the recruiting toggle
type recruitingRequest struct {
	IsRecruiting *bool `json:"is_recruiting" binding:"required"`
}

// SetRecruiting handles PATCH /teams/:slug/recruiting
// @Summary Toggle recruiting
// @Description Open or close the team for join requests; owner or manager
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param body body recruitingRequest true "Recruiting flag"
// @Success 200 {object} map[string]interface{} "Updated recruiting flag"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Viewer is not an owner or manager"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug}/recruiting [patch]
func (h *TeamHandler) SetRecruiting(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	var req recruitingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teamService.SetRecruiting(viewer, c.Param("slug"), *req.IsRecruiting); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_recruiting": *req.IsRecruiting})
}

// LeaveTeam handles POST /teams/:slug/leave
// @Summary Leave a team
// @Description Remove the caller's own membership; owners must disband instead
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Success 204 "Left the team"
// @Failure 403 {object} ErrorResponse "Viewer is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Owner cannot leave"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug}/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	if err := h.teamService.Leave(viewer, c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// KickMember handles DELETE /teams/:slug/members/:membershipId
// @Summary Kick a member
// @Description Remove a member from the roster; owner or manager, and managers cannot remove the owner
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param membershipId path int true "Membership ID"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid membership ID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Team or membership not found"
// @Failure 409 {object} ErrorResponse "Cannot kick yourself"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug}/members/{membershipId} [delete]
func (h *TeamHandler) KickMember(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	membershipID, ok := pathID(c, "membershipId")
	if !ok {
		return
	}

	if err := h.teamService.Kick(viewer, c.Param("slug"), membershipID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeMemberRole handles PATCH /teams/:slug/members/:membershipId/role
// @Summary Change a member's role
// @Description Set a member's role to manager or member; owner or manager, and managers cannot modify the owner
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Param membershipId path int true "Membership ID"
// @Param body body service.ChangeRoleRequest true "New role"
// @Success 200 {object} map[string]interface{} "Updated role"
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Team or membership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug}/members/{membershipId}/role [patch]
func (h *TeamHandler) ChangeMemberRole(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}
	membershipID, ok := pathID(c, "membershipId")
	if !ok {
		return
	}

	var req service.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := h.teamService.ChangeRole(viewer, c.Param("slug"), membershipID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"membership_id": membershipID, "role": role})
}

// DisbandTeam handles DELETE /teams/:slug
// @Summary Disband a team
// @Description Delete a team and all of its memberships; owner only
// @Tags teams
// @Accept json
// @Produce json
// @Param slug path string true "Team slug"
// @Success 204 "Team disbanded"
// @Failure 403 {object} ErrorResponse "Viewer is not the owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{slug} [delete]
func (h *TeamHandler) DisbandTeam(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		return
	}

	if err := h.teamService.Disband(viewer, c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRecruitingTeams handles GET /teams (optional game_id and rank_id parameters)
// @Summary List recruiting teams
// @Description Get recruiting teams with optional game and rank filtering
// @Tags teams
// @Accept json
// @Produce json
// @Param game_id query int false "Game ID to filter teams"
// @Param rank_id query int false "Rank ID to filter teams"
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListRecruitingTeams(c *gin.Context) {
	gameID, ok := queryID(c, "game_id")
	if !ok {
		return
	}
	rankID, ok := queryID(c, "rank_id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListRecruiting(gameID, rankID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
