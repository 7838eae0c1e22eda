package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dongwonkwak/boardly-sub002/internal/model"
)

// ActivityAudit persists audit events as activity rows. Failures are logged
// and swallowed: the sink must never fail the operation it records.
type ActivityAudit struct {
	activities ActivityStore
	log        *logrus.Logger
}

func NewActivityAudit(activities ActivityStore, log *logrus.Logger) *ActivityAudit {
	return &ActivityAudit{activities: activities, log: log}
}

func (a *ActivityAudit) Record(ctx context.Context, eventType string, actorID, boardID uuid.UUID, payload map[string]any) {
	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			a.log.WithError(err).WithField("event", eventType).Warn("⚠️  failed to encode activity payload")
			raw = nil
		}
	}

	activity := &model.Activity{
		BoardID:   boardID,
		ActorID:   actorID,
		EventType: eventType,
		Payload:   raw,
	}
	if err := a.activities.Create(ctx, activity); err != nil {
		a.log.WithError(err).WithFields(logrus.Fields{
			"event":    eventType,
			"board_id": boardID,
			"actor_id": actorID,
		}).Warn("⚠️  failed to record activity")
	}
}
