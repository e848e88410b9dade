package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusEvent(t *testing.T) {
	t.Run("should create an event for a committed transition", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		actorID := kernel.NewUUID()
		at := time.Now().UTC()

		event, err := order.NewStatusEvent(
			id, orderID, order.Accepted, "claimed", actorID, order.ActorRunner, at)

		require.NoError(t, err)
		assert.NoError(t, event.Validate())
		assert.Equal(t, id, event.ID())
		assert.Equal(t, orderID, event.OrderID())
		assert.Equal(t, order.Accepted, event.Status())
		assert.Equal(t, "claimed", event.Message())
		assert.Equal(t, actorID, event.ActorID())
		assert.Equal(t, order.ActorRunner, event.ActorRole())
		assert.Equal(t, at, event.CreatedAt())
	})

	t.Run("should allow an empty message", func(t *testing.T) {
		_, err := order.NewStatusEvent(
			kernel.NewUUID(), kernel.NewUUID(), order.Delivered, "",
			kernel.NewUUID(), order.ActorSeller, time.Now().UTC())

		require.NoError(t, err)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := order.NewStatusEvent(
			kernel.NewUUID(), kernel.NewUUID(), order.Unknown, "",
			kernel.NewUUID(), order.ActorBuyer, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an invalid actor role", func(t *testing.T) {
		_, err := order.NewStatusEvent(
			kernel.NewUUID(), kernel.NewUUID(), order.Cancelled, "",
			kernel.NewUUID(), order.ActorUnknown, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty actor id", func(t *testing.T) {
		_, err := order.NewStatusEvent(
			kernel.NewUUID(), kernel.NewUUID(), order.Cancelled, "",
			kernel.UUID{}, order.ActorSystem, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStatusEvent_Validate(t *testing.T) {
	t.Run("should reject zero value event", func(t *testing.T) {
		err := order.StatusEvent{}.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrStatusEventIsNotConstructed)
	})
}
