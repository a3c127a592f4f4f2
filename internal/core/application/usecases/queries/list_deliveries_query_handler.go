package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves delivery rows from the database.
//
// Example:
//
//	handler := NewListDeliveriesQueryHandler(db)
//	query, _ := NewListDeliveriesQuery(nil, true)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list deliveries: %v", err)
//	    return err
//	}
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery listing queries.
// Requires a GORM database connection for query execution.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by ID for consistent
// output.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			product,
			status,
			recipient_id,
			courier_id,
			start_date,
			end_date,
			canceled_at
		FROM deliveries
		WHERE 1=1
	`
	args := make([]any, 0, 1)

	if query.DeliveryID() != nil {
		sqlQuery += " AND id = ?"
		args = append(args, query.DeliveryID().Bytes())
	}
	if !query.IncludeCanceled() {
		sqlQuery += " AND canceled_at IS NULL"
	}
	sqlQuery += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]ListDeliveriesQueryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			product     string
			status      int
			recipientID uuid.UUID
			courierID   uuid.UUID
			startDate   sql.NullTime
			endDate     sql.NullTime
			canceledAt  sql.NullTime
		)

		err = rows.Scan(
			&id,
			&product,
			&status,
			&recipientID,
			&courierID,
			&startDate,
			&endDate,
			&canceledAt,
		)
		if err != nil {
			return nil, err
		}

		response, convErr := buildDeliveryResponse(
			id, product, status, recipientID, courierID, startDate, endDate, canceledAt)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func buildDeliveryResponse(
	id uuid.UUID,
	product string,
	status int,
	recipientID uuid.UUID,
	courierID uuid.UUID,
	startDate, endDate, canceledAt sql.NullTime,
) (ListDeliveriesQueryResponse, error) {
	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	recipient, err := kernel.UUIDFromBytes(recipientID[:])
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	courier, err := kernel.UUIDFromBytes(courierID[:])
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	response := ListDeliveriesQueryResponse{
		ID:          deliveryID,
		Product:     product,
		Status:      delivery.Status(status).String(),
		RecipientID: recipient,
		CourierID:   courier,
	}

	if startDate.Valid {
		start := startDate.Time
		response.StartDate = &start
	}
	if endDate.Valid {
		end := endDate.Time
		response.EndDate = &end
	}
	if canceledAt.Valid {
		at := canceledAt.Time
		response.CanceledAt = &at
	}

	return response, nil
}
