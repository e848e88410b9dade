package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderTimelineQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderTimelineQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderTimelineQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderTimelineQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderTimelineQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderTimelineQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderTimelineQueryIsNotConstructed)
}
