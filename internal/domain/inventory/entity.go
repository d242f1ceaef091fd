package inventory

import "time"

type Factory struct {
	ID        string
	Name      string
	Contact   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MachineStatus string

const (
	MachineStatusInStock    MachineStatus = "in_stock"
	MachineStatusAtCustomer MachineStatus = "at_customer"
	MachineStatusReturned   MachineStatus = "returned"
)

// Machine is a demo unit tracked from factory to customer and back.
type Machine struct {
	ID             string
	Model          string
	Serial         string
	FactoryID      *string
	WarrantyMonths int
	DeliveryDate   *time.Time
	Status         MachineStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	FactoryName *string
}

// WarrantyExpiry derives the warranty end date from the delivery date. The
// expiry is not stored; it is recomputed whenever it is read.
func (m Machine) WarrantyExpiry() (time.Time, bool) {
	if m.DeliveryDate == nil || m.WarrantyMonths <= 0 {
		return time.Time{}, false
	}
	return m.DeliveryDate.AddDate(0, m.WarrantyMonths, 0), true
}

type ChallanStatus string

const (
	ChallanStatusOpen   ChallanStatus = "open"
	ChallanStatusClosed ChallanStatus = "closed"
)

// Challan records a demo machine being issued to a customer.
type Challan struct {
	ID           string
	MachineID    string
	CustomerName string
	IssuedAt     time.Time
	DueBack      *time.Time
	Status       ChallanStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	MachineModel  *string
	MachineSerial *string
}
