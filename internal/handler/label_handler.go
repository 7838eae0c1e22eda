package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
)

type LabelHandler struct {
	labelRepo *repository.LabelRepository
	resolver  *authz.Resolver
}

func NewLabelHandler(labelRepo *repository.LabelRepository, resolver *authz.Resolver) *LabelHandler {
	return &LabelHandler{labelRepo: labelRepo, resolver: resolver}
}

type CreateLabelRequest struct {
	BoardID string `json:"board_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Color   string `json:"color" binding:"required"`
}

type UpdateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type LabelResponse struct {
	ID      string `json:"id"`
	BoardID string `json:"board_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

func labelResponse(l *model.Label) LabelResponse {
	return LabelResponse{
		ID:      l.ID.String(),
		BoardID: l.BoardID.String(),
		Name:    l.Name,
		Color:   l.Color,
	}
}

// Create creates a label on the board
// @Summary Create label
// @Tags Labels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateLabelRequest true "Label data"
// @Success 201 {object} LabelResponse
// @Router /labels [post]
func (h *LabelHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
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

	label := &model.Label{
		BoardID: boardID,
		Name:    req.Name,
		Color:   req.Color,
	}
	if err := h.labelRepo.Create(c.Request.Context(), label); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create label"})
		return
	}

	c.JSON(http.StatusCreated, labelResponse(label))
}

// GetByBoard lists the board's labels
// @Summary List labels
// @Tags Labels
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {array} LabelResponse
// @Router /boards/{id}/labels [get]
func (h *LabelHandler) GetByBoard(c *gin.Context) {
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

	labels, err := h.labelRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labels"})
		return
	}

	response := make([]LabelResponse, len(labels))
	for i, label := range labels {
		response[i] = labelResponse(&label)
	}
	c.JSON(http.StatusOK, response)
}

// Update renames or recolors a label
// @Summary Update label
// @Tags Labels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Label ID"
// @Param request body UpdateLabelRequest true "Fields to update"
// @Success 200 {object} LabelResponse
// @Router /labels/{id} [put]
func (h *LabelHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	labelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	label, err := h.labelRepo.GetByID(c.Request.Context(), labelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve label"})
		return
	}
	if label == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		return
	}

	if err := h.resolver.Require(c.Request.Context(), label.BoardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	var req UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label.Name = req.Name
	label.Color = req.Color
	if err := h.labelRepo.Update(c.Request.Context(), label); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update label"})
		return
	}

	c.JSON(http.StatusOK, labelResponse(label))
}

// Delete removes a label
// @Summary Delete label
// @Tags Labels
// @Security BearerAuth
// @Produce json
// @Param id path string true "Label ID"
// @Success 200 {object} map[string]string
// @Router /labels/{id} [delete]
func (h *LabelHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	labelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	label, err := h.labelRepo.GetByID(c.Request.Context(), labelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve label"})
		return
	}
	if label == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		return
	}

	if err := h.resolver.Require(c.Request.Context(), label.BoardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	if err := h.labelRepo.Delete(c.Request.Context(), labelID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete label"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted successfully"})
}
