package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

type orderEventRepository struct {
	q *db.Queries
}

func (r *orderEventRepository) AddEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.ID == uuid.Nil {
		return fmt.Errorf("event ID is empty")
	}

	err := r.q.InsertOrderEvent(ctx, db.InsertOrderEventParams{
		EventID:   event.ID,
		OrderID:   event.OrderID,
		EventType: string(event.Type),
		Payload:   event.Payload,
	})
	if err != nil {
		return fmt.Errorf("q.InsertOrderEvent: %w", err)
	}

	return nil
}

func (r *orderEventRepository) LockPending(ctx context.Context, limit int) ([]domain.OrderEvent, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	n, err := toInt32(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.LockPendingOrderEvents(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("q.LockPendingOrderEvents: %w", err)
	}

	events := make([]domain.OrderEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.OrderEvent{
			ID:        row.EventID,
			OrderID:   row.OrderID,
			Type:      domain.OrderEventType(row.EventType),
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}

	return events, nil
}

func (r *orderEventRepository) MarkPublished(ctx context.Context, eventIDs []uuid.UUID) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}

	rowsAffected, err := r.q.MarkOrderEventsPublished(ctx, eventIDs)
	if err != nil {
		return 0, fmt.Errorf("q.MarkOrderEventsPublished: %w", err)
	}

	return rowsAffected, nil
}
