package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/service"
)

type BoardHandler struct {
	boards  *service.BoardService
	deleter *service.BoardDeleter
}

func NewBoardHandler(boards *service.BoardService, deleter *service.BoardDeleter) *BoardHandler {
	return &BoardHandler{boards: boards, deleter: deleter}
}

type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StarBoardRequest struct {
	Starred *bool `json:"starred" binding:"required"`
}

type BoardResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	Archived    bool   `json:"archived"`
	Starred     bool   `json:"starred"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func boardResponse(b *model.Board, role model.Role) BoardResponse {
	return BoardResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		OwnerID:     b.OwnerID.String(),
		Archived:    b.Archived,
		Starred:     b.Starred,
		Role:        string(role),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

// Create creates a new board owned by the authenticated user
// @Summary Create board
// @Tags Boards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateBoardRequest true "Board data"
// @Success 201 {object} BoardResponse
// @Router /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boards.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, boardResponse(board, model.RoleOwner))
}

// GetAll lists boards owned by the authenticated user
// @Summary List own boards
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} BoardResponse
// @Router /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boards.ListOwned(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]BoardResponse, len(boards))
	for i, board := range boards {
		response[i] = boardResponse(&board, model.RoleOwner)
	}
	c.JSON(http.StatusOK, response)
}

// GetShared lists boards shared with the authenticated user
// @Summary List shared boards
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Success 200 {array} BoardResponse
// @Router /shared-boards [get]
func (h *BoardHandler) GetShared(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boards, err := h.boards.ListSharedWith(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]BoardResponse, len(boards))
	for i, board := range boards {
		response[i] = boardResponse(&board, "")
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns a single board with the caller's resolved role
// @Summary Get board
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} BoardResponse
// @Router /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, role, err := h.boards.Get(c.Request.Context(), boardID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board, role))
}

// Update changes the board title and description
// @Summary Update board
// @Tags Boards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body UpdateBoardRequest true "Fields to update"
// @Success 200 {object} BoardResponse
// @Router /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boards.Update(c.Request.Context(), boardID, userID, req.Title, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board, ""))
}

// Archive freezes the board
// @Summary Archive board
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} BoardResponse
// @Router /boards/{id}/archive [post]
func (h *BoardHandler) Archive(c *gin.Context) {
	h.setArchived(c, true)
}

// Unarchive unfreezes the board
// @Summary Unarchive board
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} BoardResponse
// @Router /boards/{id}/unarchive [post]
func (h *BoardHandler) Unarchive(c *gin.Context) {
	h.setArchived(c, false)
}

func (h *BoardHandler) setArchived(c *gin.Context, archived bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boards.SetArchived(c.Request.Context(), boardID, userID, archived)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board, ""))
}

// Star sets or clears the board's star flag
// @Summary Star or unstar board
// @Tags Boards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body StarBoardRequest true "Star flag"
// @Success 200 {object} BoardResponse
// @Router /boards/{id}/star [post]
func (h *BoardHandler) Star(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StarBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boards.SetStarred(c.Request.Context(), boardID, userID, *req.Starred)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board, ""))
}

// Delete cascades the deletion of a board and everything it owns
// @Summary Delete board
// @Tags Boards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} map[string]string
// @Router /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleter.Delete(c.Request.Context(), boardID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
