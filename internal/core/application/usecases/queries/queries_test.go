package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeliveriesQuery(t *testing.T) {
	t.Run("optional_id_is_copied", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewListDeliveriesQuery(&id, true)

		require.NoError(t, err)
		require.NotNil(t, query.DeliveryID())
		assert.True(t, query.DeliveryID().IsEqual(id))
		assert.True(t, query.IncludeCanceled())
	})

	t.Run("nil_id_lists_everything", func(t *testing.T) {
		query, err := queries.NewListDeliveriesQuery(nil, false)

		require.NoError(t, err)
		assert.Nil(t, query.DeliveryID())
		assert.False(t, query.IncludeCanceled())
	})

	t.Run("invalid_id_is_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := queries.NewListDeliveriesQuery(&zero, false)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ListDeliveriesQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListDeliveriesQueryIsNotConstructed)
	})
}

func TestListCourierDeliveriesQuery(t *testing.T) {
	t.Run("valid_courier_id", func(t *testing.T) {
		courierID := kernel.NewUUID()

		query, err := queries.NewListCourierDeliveriesQuery(courierID, true)

		require.NoError(t, err)
		assert.True(t, query.CourierID().IsEqual(courierID))
		assert.True(t, query.Delivered())
	})

	t.Run("invalid_courier_id_is_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := queries.NewListCourierDeliveriesQuery(zero, false)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ListCourierDeliveriesQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListCourierDeliveriesQueryIsNotConstructed)
	})
}

func TestListProblemsQuery(t *testing.T) {
	t.Run("optional_delivery_filter", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewListProblemsQuery(&id)

		require.NoError(t, err)
		require.NotNil(t, query.DeliveryID())
		assert.True(t, query.DeliveryID().IsEqual(id))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ListProblemsQuery

		require.ErrorIs(t, query.Validate(), queries.ErrListProblemsQueryIsNotConstructed)
	})
}
