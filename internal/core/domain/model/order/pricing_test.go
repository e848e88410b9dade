package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewPricing(t *testing.T) {
	t.Run("should create a consistent breakdown", func(t *testing.T) {
		pricing, err := order.NewPricing(
			money(t, 1000), money(t, 70), money(t, 250), money(t, 1320))

		require.NoError(t, err)
		assert.NoError(t, pricing.Validate())
		assert.Equal(t, int64(1000), pricing.Subtotal().Cents())
		assert.Equal(t, int64(70), pricing.Tax().Cents())
		assert.Equal(t, int64(250), pricing.DeliveryFee().Cents())
		assert.Equal(t, int64(1320), pricing.Total().Cents())
	})

	t.Run("should allow a zero delivery fee", func(t *testing.T) {
		_, err := order.NewPricing(
			money(t, 1000), money(t, 70), money(t, 0), money(t, 1070))

		require.NoError(t, err)
	})

	t.Run("should reject a total that does not add up", func(t *testing.T) {
		_, err := order.NewPricing(
			money(t, 1000), money(t, 70), money(t, 250), money(t, 1300))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPricing_Validate(t *testing.T) {
	t.Run("should reject zero value pricing", func(t *testing.T) {
		err := order.Pricing{}.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrPricingIsNotConstructed)
	})
}
