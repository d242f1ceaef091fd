package inventory

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateFactoryRequest struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact,omitempty"`
}

func (r *CreateFactoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateMachineRequest struct {
	Model          string  `json:"model"`
	Serial         string  `json:"serial"`
	FactoryID      *string `json:"factory_id,omitempty"`
	WarrantyMonths int     `json:"warranty_months"`
	DeliveryDate   *string `json:"delivery_date,omitempty"`
}

func (r *CreateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Model) {
		errs = append(errs, validator.ValidationError{
			Field:   "model",
			Message: "model is required",
		})
	}
	if validator.IsEmpty(r.Serial) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial",
			Message: "serial is required",
		})
	}
	if r.WarrantyMonths < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "warranty_months",
			Message: "warranty_months must not be negative",
		})
	}
	if r.DeliveryDate != nil {
		if _, ok := validator.IsValidDate(*r.DeliveryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "delivery_date",
				Message: "delivery_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeliveryDateTime returns the parsed delivery date, if present. Validate
// must have passed.
func (r *CreateMachineRequest) DeliveryDateTime() *time.Time {
	if r.DeliveryDate == nil {
		return nil
	}
	t, _ := validator.IsValidDate(*r.DeliveryDate)
	return &t
}

type UpdateMachineRequest struct {
	ID             string  `json:"-"`
	Model          *string `json:"model,omitempty"`
	FactoryID      *string `json:"factory_id,omitempty"`
	WarrantyMonths *int    `json:"warranty_months,omitempty"`
	DeliveryDate   *string `json:"delivery_date,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(MachineStatusInStock), string(MachineStatusAtCustomer), string(MachineStatusReturned),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be in_stock, at_customer, or returned",
		})
	}
	if r.DeliveryDate != nil {
		if _, ok := validator.IsValidDate(*r.DeliveryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "delivery_date",
				Message: "delivery_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateChallanRequest struct {
	MachineID    string  `json:"machine_id"`
	CustomerName string  `json:"customer_name"`
	DueBack      *string `json:"due_back,omitempty"`
}

func (r *CreateChallanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MachineID) {
		errs = append(errs, validator.ValidationError{
			Field:   "machine_id",
			Message: "machine_id is required",
		})
	}
	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}
	if r.DueBack != nil {
		if _, ok := validator.IsValidDate(*r.DueBack); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_back",
				Message: "due_back must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MachineFilter struct {
	Model     *string
	FactoryID *string
	Status    *string
	Page      int
	Limit     int
}

type ChallanFilter struct {
	MachineID    *string
	CustomerName *string
	Status       *string
	Page         int
	Limit        int
}

// ExpiringWarranty is the sweep result pushed to HR daily.
type ExpiringWarranty struct {
	Machine   Machine   `json:"machine"`
	ExpiresAt time.Time `json:"expires_at"`
}
