package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// InvalidateEvent announces that check or downtime rows were corrected in
// bulk upstream; any cached metrics may now be stale.
type InvalidateEvent struct {
	Reason      string    `json:"reason"`
	CorrectedAt time.Time `json:"corrected_at"`
}

type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

type InvalidationHandler struct {
	service CacheClearer
	logger  *zerolog.Logger
}

func NewInvalidationHandler(svc CacheClearer, logger *zerolog.Logger) *InvalidationHandler {
	return &InvalidationHandler{
		service: svc,
		logger:  logger,
	}
}

func (h *InvalidationHandler) Handle(ctx context.Context, msg amqp091.Delivery) error {
	var event InvalidateEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	h.logger.Info().
		Str("reason", event.Reason).
		Time("corrected_at", event.CorrectedAt).
		Msg("invalidation event received, clearing metrics cache")

	return h.service.ClearCache(ctx)
}
