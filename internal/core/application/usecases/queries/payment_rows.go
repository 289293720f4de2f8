package queries

import (
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// paymentSelect is the column list every payment query reads.
const paymentSelect = `
	SELECT
		id,
		order_id,
		cashier_id,
		amount,
		method,
		status,
		created_at,
		processed_at
	FROM payments
`

// scanPaymentRows reads payment rows produced by a paymentSelect query.
func scanPaymentRows(rows *sql.Rows) ([]PaymentResponse, error) {
	payments := make([]PaymentResponse, 0)

	for rows.Next() {
		var id, orderID uuid.UUID
		var cashierID uuid.NullUUID
		var amount float64
		var method, status string
		var createdAt time.Time
		var processedAt sql.NullTime

		if err := rows.Scan(&id, &orderID, &cashierID, &amount, &method, &status, &createdAt, &processedAt); err != nil {
			return nil, err
		}

		paymentID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		paymentOrderID, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		resp := PaymentResponse{
			ID:        paymentID,
			OrderID:   paymentOrderID,
			Amount:    amount,
			Method:    method,
			Status:    status,
			CreatedAt: createdAt,
		}
		if cashierID.Valid {
			paymentCashierID, idErr := kernel.UUIDFromBytes(cashierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CashierID = &paymentCashierID
		}
		if processedAt.Valid {
			t := processedAt.Time
			resp.ProcessedAt = &t
		}

		payments = append(payments, resp)
	}

	return payments, rows.Err()
}
