package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dongwonkwak/boardly-sub002/internal/authz"
	"github.com/dongwonkwak/boardly-sub002/internal/model"
	"github.com/dongwonkwak/boardly-sub002/internal/repository"
)

const activityPageSize = 50

type ActivityHandler struct {
	activityRepo *repository.ActivityRepository
	resolver     *authz.Resolver
}

func NewActivityHandler(activityRepo *repository.ActivityRepository, resolver *authz.Resolver) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo, resolver: resolver}
}

type ActivityResponse struct {
	ID        string         `json:"id"`
	ActorID   string         `json:"actor_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt string         `json:"created_at"`
}

// GetByBoard returns the most recent audit events of the board
// @Summary List board activity
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {array} ActivityResponse
// @Router /boards/{id}/activity [get]
func (h *ActivityHandler) GetByBoard(c *gin.Context) {
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

	activities, err := h.activityRepo.ListByBoard(c.Request.Context(), boardID, activityPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		return
	}

	response := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		var payload map[string]any
		if len(activity.Payload) > 0 {
			// A payload that fails to decode is dropped, not fatal.
			_ = json.Unmarshal(activity.Payload, &payload)
		}
		response[i] = ActivityResponse{
			ID:        activity.ID.String(),
			ActorID:   activity.ActorID.String(),
			EventType: activity.EventType,
			Payload:   payload,
			CreatedAt: activity.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}
