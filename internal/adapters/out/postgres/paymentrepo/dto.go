// Package paymentrepo provides persistence for payment records. The table
// enforces at most one payment per order through a unique index on the order
// reference.
package paymentrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payments.
// CashierID and ProcessedAt stay NULL until the payment is settled.
type PaymentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CashierID   *uuid.UUID `gorm:"type:uuid"`
	Amount      float64
	Method      string
	Status      string `gorm:"index"`
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	var cashierID *uuid.UUID
	if id := aggregate.CashierID(); id != nil {
		raw := id.Bytes()
		cashierID = &raw
	}

	return PaymentDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CashierID:   cashierID,
		Amount:      aggregate.Amount(),
		Method:      aggregate.Method(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a payment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var cashierID *kernel.UUID
	if dto.CashierID != nil {
		cID, cashierErr := kernel.UUIDFromBytes((*dto.CashierID)[:])
		if cashierErr != nil {
			return nil, cashierErr
		}
		cashierID = &cID
	}

	return payment.RestorePayment(
		id, orderID, cashierID, dto.Amount, dto.Method, status, dto.CreatedAt, dto.ProcessedAt,
	)
}
