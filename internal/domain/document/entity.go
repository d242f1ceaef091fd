package document

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one row of an invoice or order. Items are stored as a JSONB
// column; totals are derived, never trusted from the client.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type LineItems []LineItem

// Total sums all line amounts.
func (items LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Amount())
	}
	return total
}

// Value implements driver.Valuer for database storage
func (items LineItems) Value() (driver.Value, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner for database retrieval
func (items *LineItems) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LineItems: invalid type")
	}

	return json.Unmarshal(bytes, items)
}

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

type Invoice struct {
	ID           string
	Number       string
	CustomerName string
	IssueDate    time.Time
	DueDate      *time.Time
	Items        LineItems
	Total        decimal.Decimal
	Status       InvoiceStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID           string
	Number       string
	CustomerName string
	OrderDate    time.Time
	Items        LineItems
	Total        decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ChallanStatus string

const (
	ChallanStatusOpen      ChallanStatus = "open"
	ChallanStatusDelivered ChallanStatus = "delivered"
)

// DeliveryChallan accompanies goods out the door; quantities only, no prices.
type DeliveryChallan struct {
	ID              string
	Number          string
	CustomerName    string
	ChallanDate     time.Time
	Items           LineItems
	LinkedInvoiceID *string
	Status          ChallanStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
