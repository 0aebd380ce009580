package port

import (
	"context"

	"github.com/nikolayk812/swiftcart/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, events []domain.OrderEvent) error
}
