package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/sirupsen/logrus"
)

// Relay moves committed order events from the outbox table to a publisher. Delivery is at least
// once: a crash between Publish and the commit re-sends the batch.
type Relay struct {
	store     port.Store
	publisher port.EventPublisher
	log       logrus.FieldLogger
}

func NewRelay(store port.Store, publisher port.EventPublisher, log logrus.FieldLogger) *Relay {
	return &Relay{
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// RelayOnce publishes up to limit pending events and returns how many were marked published.
// Rows locked by a concurrent relay are skipped.
func (r *Relay) RelayOnce(ctx context.Context, limit int) (int, error) {
	var published int

	err := r.store.InTx(ctx, func(tx port.Tx) error {
		events, err := tx.Events().LockPending(ctx, limit)
		if err != nil {
			return fmt.Errorf("tx.Events.LockPending: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, events); err != nil {
			return fmt.Errorf("publisher.Publish: %w", err)
		}

		marked, err := tx.Events().MarkPublished(ctx, eventIDs(events))
		if err != nil {
			return fmt.Errorf("tx.Events.MarkPublished: %w", err)
		}

		published = int(marked)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

// Run calls RelayOnce every interval until ctx is cancelled. A full batch is followed by another
// one right away.
func (r *Relay) Run(ctx context.Context, interval time.Duration, limit int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		published, err := r.RelayOnce(ctx, limit)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			r.log.WithError(err).Error("relay order events")
		case published > 0:
			r.log.WithField("count", published).Info("order events published")
		}

		if err == nil && published == limit {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func eventIDs(events []domain.OrderEvent) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	return ids
}
