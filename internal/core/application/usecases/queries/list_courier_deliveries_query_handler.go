package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCourierDeliveriesQueryHandler retrieves a courier's pending or
// delivered workload from the database. Canceled deliveries never appear in
// either view.
type ListCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListCourierDeliveriesQueryHandler creates a handler for courier
// workload queries.
func NewListCourierDeliveriesQueryHandler(db *gorm.DB) ListCourierDeliveriesQueryHandler {
	return ListCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the workload query for one courier.
func (h ListCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListCourierDeliveriesQuery,
) ([]ListCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			product,
			status,
			recipient_id,
			start_date,
			end_date
		FROM deliveries
		WHERE courier_id = ?
		  AND canceled_at IS NULL
	`
	if query.Delivered() {
		sqlQuery += " AND end_date IS NOT NULL"
	} else {
		sqlQuery += " AND end_date IS NULL"
	}
	sqlQuery += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]ListCourierDeliveriesQueryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			product     string
			status      int
			recipientID uuid.UUID
			startDate   sql.NullTime
			endDate     sql.NullTime
		)

		err = rows.Scan(&id, &product, &status, &recipientID, &startDate, &endDate)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		recipient, idErr := kernel.UUIDFromBytes(recipientID[:])
		if idErr != nil {
			return nil, idErr
		}

		response := ListCourierDeliveriesQueryResponse{
			ID:          deliveryID,
			Product:     product,
			Status:      delivery.Status(status).String(),
			RecipientID: recipient,
		}
		if startDate.Valid {
			start := startDate.Time
			response.StartDate = &start
		}
		if endDate.Valid {
			end := endDate.Time
			response.EndDate = &end
		}

		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
