package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

type MemberHandler struct {
	members  *service.MembershipService
	userRepo repository.UserRepositoryInterface
}

func NewMemberHandler(members *service.MembershipService, userRepo repository.UserRepositoryInterface) *MemberHandler {
	return &MemberHandler{members: members, userRepo: userRepo}
}

type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=viewer editor"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=viewer editor"`
}

type MemberResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Add grants a user access to the board, looked up by email
// @Summary Add board member
// @Tags Members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body AddMemberRequest true "Member data"
// @Success 201 {object} MemberResponse
// @Router /boards/{id}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	target, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	member, err := h.members.AddMember(c.Request.Context(), boardID, target.ID, model.Role(req.Role), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MemberResponse{
		UserID: member.UserID.String(),
		Email:  target.Email,
		Name:   target.Name,
		Role:   string(member.Role),
		Active: member.Active,
	})
}

// Remove deactivates a member's access
// @Summary Remove board member
// @Tags Members
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]string
// @Router /boards/{id}/members/{user_id} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.members.RemoveMember(c.Request.Context(), boardID, targetID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// ChangeRole sets a member's role
// @Summary Change member role
// @Tags Members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param user_id path string true "User ID"
// @Param request body ChangeRoleRequest true "New role"
// @Success 200 {object} MemberResponse
// @Router /boards/{id}/members/{user_id}/role [put]
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	member, err := h.members.ChangeRole(c.Request.Context(), boardID, targetID, model.Role(req.Role), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MemberResponse{
		UserID: member.UserID.String(),
		Role:   string(member.Role),
		Active: member.Active,
	})
}

// List returns the active roster plus the board owner
// @Summary List board members
// @Tags Members
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {array} MemberResponse
// @Router /boards/{id}/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.members.ListMembers(c.Request.Context(), boardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]MemberResponse, len(members))
	for i, member := range members {
		response[i] = MemberResponse{
			UserID: member.UserID.String(),
			Email:  member.User.Email,
			Name:   member.User.Name,
			Role:   string(member.Role),
			Active: member.Active,
		}
	}
	c.JSON(http.StatusOK, response)
}
