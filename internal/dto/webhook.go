package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// FinqleEventType enumerates the webhook events Finqle delivers.
type FinqleEventType string

const (
	FinqlePaymentInitiated FinqleEventType = "payment.initiated"
	FinqlePaymentCompleted FinqleEventType = "payment.completed"
	FinqlePaymentFailed    FinqleEventType = "payment.failed"
	FinqleInvoiceCreated   FinqleEventType = "invoice.created"
	FinqleInvoicePaid      FinqleEventType = "invoice.paid"
	FinqleInvoiceOverdue   FinqleEventType = "invoice.overdue"
)

// FinqleWebhookEvent is the inbound webhook envelope. Data is decoded per
// event type.
type FinqleWebhookEvent struct {
	Event     FinqleEventType `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature,omitempty"`
}

// FinqlePaymentData is the payload of payment.* events.
type FinqlePaymentData struct {
	PaymentID string          `json:"paymentId"`
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
}

// FinqleInvoiceData is the payload of invoice.* events.
type FinqleInvoiceData struct {
	InvoiceID  string          `json:"invoiceId"`
	UserID     string          `json:"userId"`
	OpdrachtID *string         `json:"opdrachtId,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
}
