package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWaypoint(t *testing.T, address string, lat, lng float64) order.Waypoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	wp, err := order.NewWaypoint(address, point)
	require.NoError(t, err)
	return wp
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

// testPendingNetworkOrder builds a pending network delivery order.
func testPendingNetworkOrder(t *testing.T) *order.Order {
	t.Helper()

	id := kernel.NewUUID()
	dropoff := testWaypoint(t, "1000 Morewood Ave", 40.4520, -79.9430)
	o, err := order.NewOrder(
		id,
		"ORD-"+id.String()[:8],
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.NetworkFulfilled,
		order.Delivery,
		testWaypoint(t, "5000 Forbes Ave", 40.4433, -79.9436),
		&dropoff,
		testPricing(t),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	dropoff := testWaypoint(t, "1000 Morewood Ave", 40.4520, -79.9430)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "ORD-1042", kernel.NewUUID(), kernel.NewUUID(),
		order.NetworkFulfilled, order.Delivery,
		testWaypoint(t, "5000 Forbes Ave", 40.4433, -79.9436), &dropoff, testPricing(t))
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "ORD-1042", cmd.OrderNumber())
	assert.Equal(t, order.NetworkFulfilled, cmd.Fulfillment())
	assert.NotNil(t, cmd.Dropoff())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	dropoff := testWaypoint(t, "1000 Morewood Ave", 40.4520, -79.9430)
	pickup := testWaypoint(t, "5000 Forbes Ave", 40.4433, -79.9436)

	tests := []struct {
		name  string
		build func() (commands.CreateOrderCommand, error)
	}{
		{
			name: "zero order id",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.UUID{}, "ORD-1", kernel.NewUUID(), kernel.NewUUID(),
					order.NetworkFulfilled, order.Delivery, pickup, &dropoff, testPricing(t))
			},
		},
		{
			name: "empty order number",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
					order.NetworkFulfilled, order.Delivery, pickup, &dropoff, testPricing(t))
			},
		},
		{
			name: "unknown fulfillment",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), "ORD-1", kernel.NewUUID(), kernel.NewUUID(),
					order.FulfillmentUnknown, order.Delivery, pickup, &dropoff, testPricing(t))
			},
		},
		{
			name: "unconstructed pickup waypoint",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), "ORD-1", kernel.NewUUID(), kernel.NewUUID(),
					order.NetworkFulfilled, order.Delivery, order.Waypoint{}, &dropoff, testPricing(t))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
