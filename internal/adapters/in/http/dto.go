package http

import (
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AdmitDeliveryRequest is the body of POST /api/v1/deliveries.
type AdmitDeliveryRequest struct {
	Product     string     `json:"product"`
	RecipientID string     `json:"recipient_id"`
	CourierID   string     `json:"courier_id"`
	StartDate   *time.Time `json:"start_date,omitempty"`
}

// RegisterShipmentRequest is the body of POST /api/v1/shipments.
type RegisterShipmentRequest struct {
	Product     string `json:"product"`
	RecipientID string `json:"recipient_id"`
	CourierID   string `json:"courier_id"`
}

// EditDeliveryRequest is the body of PUT /api/v1/deliveries/:deliveryId.
// Absent fields are left unchanged.
type EditDeliveryRequest struct {
	Product     *string    `json:"product,omitempty"`
	RecipientID *string    `json:"recipient_id,omitempty"`
	CourierID   *string    `json:"courier_id,omitempty"`
	SignatureID *string    `json:"signature_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// StartDeliveryRequest is the body of the courier start transition.
type StartDeliveryRequest struct {
	StartDate time.Time `json:"start_date"`
}

// CompleteDeliveryRequest is the body of the courier complete transition.
type CompleteDeliveryRequest struct {
	EndDate     time.Time `json:"end_date"`
	SignatureID string    `json:"signature_id"`
}

// ReportProblemRequest is the body of POST /api/v1/deliveries/:deliveryId/problems.
type ReportProblemRequest struct {
	Description string `json:"description"`
}

// AdmittedDeliveryResponse is returned by the admission endpoint.
type AdmittedDeliveryResponse struct {
	ID               string     `json:"id"`
	Product          string     `json:"product"`
	Status           string     `json:"status"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	RecipientName    string     `json:"recipient_name"`
	RecipientAddress string     `json:"recipient_address,omitempty"`
	CourierName      string     `json:"courier_name"`
	CourierEmail     string     `json:"courier_email"`
}

// DeliveryResponse is one row of the delivery listing endpoints.
type DeliveryResponse struct {
	ID          string     `json:"id"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	RecipientID string     `json:"recipient_id"`
	CourierID   string     `json:"courier_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

// CourierDeliveryResponse is one row of a courier's workload listing.
type CourierDeliveryResponse struct {
	ID          string     `json:"id"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	RecipientID string     `json:"recipient_id"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ProblemResponse is one row of the problem listing endpoint.
type ProblemResponse struct {
	ID           string     `json:"id"`
	DeliveryID   string     `json:"delivery_id"`
	Description  string     `json:"description"`
	Product      string     `json:"product"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CourierName  string     `json:"courier_name"`
	CourierEmail string     `json:"courier_email"`
}

// ReportedProblemResponse is returned when a problem report is created.
type ReportedProblemResponse struct {
	ID         string `json:"id"`
	DeliveryID string `json:"delivery_id"`
}

func admittedDeliveryToResponse(r commands.AdmitDeliveryResponse) AdmittedDeliveryResponse {
	return AdmittedDeliveryResponse{
		ID:               r.DeliveryID.String(),
		Product:          r.Product,
		Status:           r.Status.String(),
		StartDate:        r.StartDate,
		RecipientName:    r.RecipientName,
		RecipientAddress: r.RecipientAddress,
		CourierName:      r.CourierName,
		CourierEmail:     r.CourierEmail,
	}
}

func deliveriesToResponse(rows []queries.ListDeliveriesQueryResponse) []DeliveryResponse {
	response := make([]DeliveryResponse, len(rows))
	for i, row := range rows {
		response[i] = DeliveryResponse{
			ID:          row.ID.String(),
			Product:     row.Product,
			Status:      row.Status,
			RecipientID: row.RecipientID.String(),
			CourierID:   row.CourierID.String(),
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
			CanceledAt:  row.CanceledAt,
		}
	}
	return response
}

func courierDeliveriesToResponse(rows []queries.ListCourierDeliveriesQueryResponse) []CourierDeliveryResponse {
	response := make([]CourierDeliveryResponse, len(rows))
	for i, row := range rows {
		response[i] = CourierDeliveryResponse{
			ID:          row.ID.String(),
			Product:     row.Product,
			Status:      row.Status,
			RecipientID: row.RecipientID.String(),
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
		}
	}
	return response
}

func problemsToResponse(rows []queries.ListProblemsQueryResponse) []ProblemResponse {
	response := make([]ProblemResponse, len(rows))
	for i, row := range rows {
		response[i] = ProblemResponse{
			ID:           row.ID.String(),
			DeliveryID:   row.DeliveryID.String(),
			Description:  row.Description,
			Product:      row.Product,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			CourierName:  row.CourierName,
			CourierEmail: row.CourierEmail,
		}
	}
	return response
}
