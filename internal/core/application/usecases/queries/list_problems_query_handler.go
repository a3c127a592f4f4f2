package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProblemsQueryHandler retrieves problem reports joined with delivery and
// courier details so operators can triage without further lookups.
type ListProblemsQueryHandler struct {
	db *gorm.DB
}

// NewListProblemsQueryHandler creates a handler for problem listing queries.
func NewListProblemsQueryHandler(db *gorm.DB) ListProblemsQueryHandler {
	return ListProblemsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by problem ID for
// consistent output.
func (h ListProblemsQueryHandler) Handle(
	ctx context.Context,
	query ListProblemsQuery,
) ([]ListProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			p.id,
			p.delivery_id,
			p.description,
			d.product,
			d.start_date,
			d.end_date,
			c.name,
			c.email
		FROM problems p
		JOIN deliveries d ON d.id = p.delivery_id
		JOIN couriers c ON c.id = d.courier_id
	`
	args := make([]any, 0, 1)

	if query.DeliveryID() != nil {
		sqlQuery += " WHERE p.delivery_id = ?"
		args = append(args, query.DeliveryID().Bytes())
	}
	sqlQuery += " ORDER BY p.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	problems := make([]ListProblemsQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			deliveryID   uuid.UUID
			description  string
			product      string
			startDate    sql.NullTime
			endDate      sql.NullTime
			courierName  string
			courierEmail string
		)

		err = rows.Scan(
			&id,
			&deliveryID,
			&description,
			&product,
			&startDate,
			&endDate,
			&courierName,
			&courierEmail,
		)
		if err != nil {
			return nil, err
		}

		problemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		delivery, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}

		response := ListProblemsQueryResponse{
			ID:           problemID,
			DeliveryID:   delivery,
			Description:  description,
			Product:      product,
			CourierName:  courierName,
			CourierEmail: courierEmail,
		}
		if startDate.Valid {
			start := startDate.Time
			response.StartDate = &start
		}
		if endDate.Valid {
			end := endDate.Time
			response.EndDate = &end
		}

		problems = append(problems, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
