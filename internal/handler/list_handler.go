package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
)

type ListHandler struct {
	listRepo *repository.ListRepository
	resolver *authz.Resolver
}

func NewListHandler(listRepo *repository.ListRepository, resolver *authz.Resolver) *ListHandler {
	return &ListHandler{listRepo: listRepo, resolver: resolver}
}

type CreateListRequest struct {
	BoardID string `json:"board_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

type UpdateListRequest struct {
	Title string `json:"title" binding:"required"`
}

type ListResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"board_id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

func listResponse(l *model.BoardList) ListResponse {
	return ListResponse{
		ID:       l.ID.String(),
		BoardID:  l.BoardID.String(),
		Title:    l.Title,
		Position: l.Position,
	}
}

// Create appends a list to the board
// @Summary Create list
// @Tags Lists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateListRequest true "List data"
// @Success 201 {object} ListResponse
// @Router /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	boardID, err := uuid.Parse(req.BoardID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	maxPos, err := h.listRepo.GetMaxPosition(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine position"})
		return
	}

	list := &model.BoardList{
		BoardID:  boardID,
		Title:    req.Title,
		Position: maxPos + 1,
	}
	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}

	c.JSON(http.StatusCreated, listResponse(list))
}

// GetByBoard returns the board's lists in position order
// @Summary List board lists
// @Tags Lists
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {array} ListResponse
// @Router /boards/{id}/lists [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapRead); err != nil {
		writeError(c, err)
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve lists"})
		return
	}

	response := make([]ListResponse, len(lists))
	for i, list := range lists {
		response[i] = listResponse(&list)
	}
	c.JSON(http.StatusOK, response)
}

// Update renames a list
// @Summary Update list
// @Tags Lists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "List ID"
// @Param request body UpdateListRequest true "Fields to update"
// @Success 200 {object} ListResponse
// @Router /lists/{id} [put]
func (h *ListHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve list"})
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	if err := h.resolver.Require(c.Request.Context(), list.BoardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list.Title = req.Title
	if err := h.listRepo.Update(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update list"})
		return
	}

	c.JSON(http.StatusOK, listResponse(list))
}

// Delete removes a list
// @Summary Delete list
// @Tags Lists
// @Security BearerAuth
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} map[string]string
// @Router /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve list"})
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return
	}

	if err := h.resolver.Require(c.Request.Context(), list.BoardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	if err := h.listRepo.Delete(c.Request.Context(), listID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}
