package repository_test

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestOrderEvents() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		event, err := domain.NewOrderEvent(domain.OrderEventPlaced, domain.Order{
			ID: int64(i + 1), Total: randomMoney(), Status: domain.OrderStatusPending,
		})
		require.NoError(t, err)
		require.NoError(t, suite.store.Events().AddEvent(ctx, event))
		ids = append(ids, event.ID)
	}

	pending, err := suite.store.Events().LockPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, domain.OrderEventPlaced, pending[0].Type)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	assert.EqualValues(t, 1, payload["order_id"])
	assert.Equal(t, "PENDING", payload["status"])

	marked, err := suite.store.Events().MarkPublished(ctx, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	pending, err = suite.store.Events().LockPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ids[2], pending[0].ID)

	_, err = suite.store.Events().LockPending(ctx, 0)
	require.Error(t, err)

	err = suite.store.Events().AddEvent(ctx, domain.OrderEvent{})
	require.EqualError(t, err, "event ID is empty")
}

func (suite *repositorySuite) TestOrderEvents_SkipLocked() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	event, err := domain.NewOrderEvent(domain.OrderEventPlaced, domain.Order{ID: 1, Total: randomMoney()})
	require.NoError(t, err)
	require.NoError(t, suite.store.Events().AddEvent(ctx, event))

	done := make(chan []domain.OrderEvent)
	err = suite.store.InTx(ctx, func(tx port.Tx) error {
		locked, err := tx.Events().LockPending(ctx, 10)
		if err != nil {
			return err
		}
		require.Len(t, locked, 1)

		// a concurrent relay skips rows locked by this one

		go func() {
			var seen []domain.OrderEvent
			_ = suite.store.InTx(ctx, func(other port.Tx) error {
				var err error
				seen, err = other.Events().LockPending(ctx, 10)
				return err
			})
			done <- seen
		}()

		assert.Empty(t, <-done)
		return nil
	})
	require.NoError(t, err)
}
