package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
)

type CardHandler struct {
	cardRepo *repository.CardRepository
	listRepo *repository.ListRepository
	resolver *authz.Resolver
}

func NewCardHandler(cardRepo *repository.CardRepository, listRepo *repository.ListRepository, resolver *authz.Resolver) *CardHandler {
	return &CardHandler{cardRepo: cardRepo, listRepo: listRepo, resolver: resolver}
}

type CreateCardRequest struct {
	ListID      string `json:"list_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateCardRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

type MoveCardRequest struct {
	ListID   string `json:"list_id" binding:"required"`
	Position int    `json:"position"`
}

type CardResponse struct {
	ID          string     `json:"id"`
	ListID      string     `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func cardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:          card.ID.String(),
		ListID:      card.ListID.String(),
		Title:       card.Title,
		Description: card.Description,
		Position:    card.Position,
		DueDate:     card.DueDate,
	}
}

// boardOf resolves the owning board of a list, for permission checks.
func (h *CardHandler) boardOf(c *gin.Context, listID uuid.UUID) (uuid.UUID, bool) {
	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve list"})
		return uuid.Nil, false
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
		return uuid.Nil, false
	}
	return list.BoardID, true
}

// Create appends a card to a list
// @Summary Create card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCardRequest true "Card data"
// @Success 201 {object} CardResponse
// @Router /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	listID, err := uuid.Parse(req.ListID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	boardID, ok := h.boardOf(c, listID)
	if !ok {
		return
	}
	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	maxPos, err := h.cardRepo.GetMaxPosition(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine position"})
		return
	}

	card := &model.Card{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userID,
		Position:    maxPos + 1,
	}
	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, cardResponse(card))
}

// GetByList returns the list's cards in position order
// @Summary List cards
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {array} CardResponse
// @Router /lists/{id}/cards [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	boardID, ok := h.boardOf(c, listID)
	if !ok {
		return
	}
	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapRead); err != nil {
		writeError(c, err)
		return
	}

	cards, err := h.cardRepo.GetByListID(c.Request.Context(), listID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]CardResponse, len(cards))
	for i, card := range cards {
		response[i] = cardResponse(&card)
	}
	c.JSON(http.StatusOK, response)
}

// Update changes a card's content
// @Summary Update card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body UpdateCardRequest true "Fields to update"
// @Success 200 {object} CardResponse
// @Router /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	boardID, ok := h.boardOf(c, card.ListID)
	if !ok {
		return
	}
	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Title != "" {
		card.Title = req.Title
	}
	if req.Description != "" {
		card.Description = req.Description
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	if err := h.cardRepo.Update(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, cardResponse(card))
}

// Move relocates a card within or across lists
// @Summary Move card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param request body MoveCardRequest true "Target list and position"
// @Success 200 {object} map[string]string
// @Router /cards/{id}/move [post]
func (h *CardHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	targetListID, err := uuid.Parse(req.ListID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list ID format"})
		return
	}

	boardID, ok := h.boardOf(c, targetListID)
	if !ok {
		return
	}
	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	if err := h.cardRepo.Move(c.Request.Context(), cardID, targetListID, req.Position); err != nil {
		if err == repository.ErrCardNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card moved successfully"})
}

// Delete removes a card
// @Summary Delete card
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} map[string]string
// @Router /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	boardID, ok := h.boardOf(c, card.ListID)
	if !ok {
		return
	}
	if err := h.resolver.Require(c.Request.Context(), boardID, userID, model.CapWrite); err != nil {
		writeError(c, err)
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), cardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
