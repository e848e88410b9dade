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

func testWaypoint(t *testing.T, address string, lat, lng float64) order.Waypoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	waypoint, err := order.NewWaypoint(address, point)
	require.NoError(t, err)
	return waypoint
}

func testPickup(t *testing.T) order.Waypoint {
	t.Helper()
	return testWaypoint(t, "12 Campus Way", 40.4443, -79.9436)
}

func testDropoff(t *testing.T) *order.Waypoint {
	t.Helper()
	waypoint := testWaypoint(t, "300 Dorm Hall", 40.4421, -79.9401)
	return &waypoint
}

func testPricing(t *testing.T) order.Pricing {
	t.Helper()
	subtotal, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	tax, err := kernel.NewMoney(70)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(250)
	require.NoError(t, err)
	total, err := kernel.NewMoney(1320)
	require.NoError(t, err)
	pricing, err := order.NewPricing(subtotal, tax, fee, total)
	require.NoError(t, err)
	return pricing
}

func testOrder(t *testing.T, fulfillment order.Fulfillment, deliveryType order.DeliveryType) *order.Order {
	t.Helper()
	var dropoff *order.Waypoint
	if deliveryType == order.Delivery {
		dropoff = testDropoff(t)
	}
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		"CM-1A2B3C4D",
		kernel.NewUUID(),
		kernel.NewUUID(),
		fulfillment,
		deliveryType,
		testPickup(t),
		dropoff,
		testPricing(t),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return placed
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending unassigned order", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)

		assert.Equal(t, order.Pending, placed.Status())
		assert.Nil(t, placed.RunnerID())
		assert.Nil(t, placed.AcceptedAt())
		assert.Nil(t, placed.PickedUpAt())
		assert.Nil(t, placed.DeliveredAt())
		assert.Nil(t, placed.EstimatedMinutes())
		assert.NoError(t, placed.Validate())
	})

	t.Run("should allow pickup type without dropoff", func(t *testing.T) {
		placed, err := order.NewOrder(
			kernel.NewUUID(), "CM-1A2B3C4D", kernel.NewUUID(), kernel.NewUUID(),
			order.MerchantFulfilled, order.Pickup,
			testPickup(t), nil, testPricing(t), time.Now().UTC())

		require.NoError(t, err)
		assert.Nil(t, placed.Dropoff())
	})

	t.Run("should require dropoff for delivery type", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "CM-1A2B3C4D", kernel.NewUUID(), kernel.NewUUID(),
			order.NetworkFulfilled, order.Delivery,
			testPickup(t), nil, testPricing(t), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrDropoffIsRequired)
	})

	t.Run("should require an order number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
			order.NetworkFulfilled, order.Delivery,
			testPickup(t), testDropoff(t), testPricing(t), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNumberIsRequired)
	})

	t.Run("should reject empty buyer id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "CM-1A2B3C4D", kernel.UUID{}, kernel.NewUUID(),
			order.NetworkFulfilled, order.Delivery,
			testPickup(t), testDropoff(t), testPricing(t), time.Now().UTC())

		require.Error(t, err)
	})

	t.Run("should reject unknown fulfillment", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "CM-1A2B3C4D", kernel.NewUUID(), kernel.NewUUID(),
			order.FulfillmentUnknown, order.Delivery,
			testPickup(t), testDropoff(t), testPricing(t), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil order", func(t *testing.T) {
		var placed *order.Order

		err := placed.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		err := (&order.Order{}).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should assign runner and move to accepted", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		runnerID := kernel.NewUUID()
		at := time.Now().UTC()

		err := placed.Claim(runnerID, at)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, placed.Status())
		require.NotNil(t, placed.RunnerID())
		assert.Equal(t, runnerID, *placed.RunnerID())
		require.NotNil(t, placed.AcceptedAt())
		assert.Equal(t, at, *placed.AcceptedAt())
	})

	t.Run("should reject claiming a merchant order", func(t *testing.T) {
		placed := testOrder(t, order.MerchantFulfilled, order.Delivery)

		err := placed.Claim(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNotClaimable)
	})

	t.Run("should reject a second claim", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))

		err := placed.Claim(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNotClaimable)
	})

	t.Run("should reject claiming a cancelled order", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.TransitionTo(order.Cancelled, time.Now().UTC()))

		err := placed.Claim(kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNotClaimable)
	})

	t.Run("should reject empty runner id", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)

		err := placed.Claim(kernel.UUID{}, time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, order.Pending, placed.Status())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the full network delivery lifecycle", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))

		pickedUpAt := time.Now().UTC().Add(time.Minute)
		require.NoError(t, placed.TransitionTo(order.PickedUp, pickedUpAt))
		require.NoError(t, placed.TransitionTo(order.OnTheWay, time.Now().UTC()))

		deliveredAt := time.Now().UTC().Add(10 * time.Minute)
		require.NoError(t, placed.TransitionTo(order.Delivered, deliveredAt))

		assert.Equal(t, order.Delivered, placed.Status())
		require.NotNil(t, placed.PickedUpAt())
		assert.Equal(t, pickedUpAt, *placed.PickedUpAt())
		require.NotNil(t, placed.DeliveredAt())
		assert.Equal(t, deliveredAt, *placed.DeliveredAt())
	})

	t.Run("should walk the full merchant lifecycle", func(t *testing.T) {
		placed := testOrder(t, order.MerchantFulfilled, order.Pickup)

		require.NoError(t, placed.TransitionTo(order.Accepted, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.Ready, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.OnTheWay, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.Delivered, time.Now().UTC()))

		assert.Equal(t, order.Delivered, placed.Status())
		assert.Nil(t, placed.RunnerID())
	})

	t.Run("should reject an edge from another mode's graph", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))

		err := placed.TransitionTo(order.Ready, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Accepted, placed.Status())
	})

	t.Run("should cancel a pending order", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)

		err := placed.TransitionTo(order.Cancelled, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, placed.Status())
	})

	t.Run("should reject any transition after delivery", func(t *testing.T) {
		placed := testOrder(t, order.MerchantFulfilled, order.Pickup)
		require.NoError(t, placed.TransitionTo(order.Accepted, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.Ready, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.OnTheWay, time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.Delivered, time.Now().UTC()))

		err := placed.TransitionTo(order.Cancelled, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("should keep the first accepted timestamp", func(t *testing.T) {
		placed := testOrder(t, order.MerchantFulfilled, order.Pickup)
		acceptedAt := time.Now().UTC()
		require.NoError(t, placed.TransitionTo(order.Accepted, acceptedAt))

		require.NoError(t, placed.TransitionTo(order.Cancelled, acceptedAt.Add(time.Hour)))

		require.NotNil(t, placed.AcceptedAt())
		assert.Equal(t, acceptedAt, *placed.AcceptedAt())
	})
}

func TestOrder_SetEstimatedMinutes(t *testing.T) {
	t.Run("should set the estimate at acceptance", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))

		err := placed.SetEstimatedMinutes(25)

		require.NoError(t, err)
		require.NotNil(t, placed.EstimatedMinutes())
		assert.Equal(t, 25, *placed.EstimatedMinutes())
	})

	t.Run("should reject a non-positive estimate", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))

		err := placed.SetEstimatedMinutes(0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject setting before acceptance", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)

		err := placed.SetEstimatedMinutes(25)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject setting twice", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, placed.SetEstimatedMinutes(25))

		err := placed.SetEstimatedMinutes(30)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 25, *placed.EstimatedMinutes())
	})

	t.Run("should reject setting after pickup", func(t *testing.T) {
		placed := testOrder(t, order.NetworkFulfilled, order.Delivery)
		require.NoError(t, placed.Claim(kernel.NewUUID(), time.Now().UTC()))
		require.NoError(t, placed.TransitionTo(order.PickedUp, time.Now().UTC()))

		err := placed.SetEstimatedMinutes(25)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	restore := func(
		fulfillment order.Fulfillment,
		status order.Status,
		runnerID *kernel.UUID,
	) (*order.Order, error) {
		acceptedAt := time.Now().UTC()
		return order.RestoreOrder(
			kernel.NewUUID(), "CM-1A2B3C4D", kernel.NewUUID(), kernel.NewUUID(),
			runnerID, fulfillment, order.Delivery, status,
			testPickup(t), testDropoff(t), testPricing(t),
			nil, time.Now().UTC(), &acceptedAt, nil, nil)
	}

	t.Run("should restore a claimed network order", func(t *testing.T) {
		runnerID := kernel.NewUUID()

		restored, err := restore(order.NetworkFulfilled, order.Accepted, &runnerID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, restored.Status())
		require.NotNil(t, restored.RunnerID())
		assert.Equal(t, runnerID, *restored.RunnerID())
	})

	t.Run("should reject a pending order with a runner", func(t *testing.T) {
		runnerID := kernel.NewUUID()

		_, err := restore(order.NetworkFulfilled, order.Pending, &runnerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrRunnerAssignmentCorrupted)
	})

	t.Run("should reject an accepted network order without a runner", func(t *testing.T) {
		_, err := restore(order.NetworkFulfilled, order.Accepted, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrRunnerAssignmentCorrupted)
	})

	t.Run("should reject a merchant order with a runner", func(t *testing.T) {
		runnerID := kernel.NewUUID()

		_, err := restore(order.MerchantFulfilled, order.Accepted, &runnerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrRunnerAssignmentCorrupted)
	})

	t.Run("should allow a cancelled network order with or without a runner", func(t *testing.T) {
		runnerID := kernel.NewUUID()

		_, err := restore(order.NetworkFulfilled, order.Cancelled, &runnerID)
		assert.NoError(t, err)

		_, err = restore(order.NetworkFulfilled, order.Cancelled, nil)
		assert.NoError(t, err)
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := restore(order.NetworkFulfilled, order.Unknown, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		a := testOrder(t, order.NetworkFulfilled, order.Delivery)
		b := testOrder(t, order.NetworkFulfilled, order.Delivery)

		assert.True(t, a.IsEqual(a))
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
