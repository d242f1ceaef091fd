package document

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

func validateItems(items LineItems, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one line item is required",
		})
	}
	for _, li := range items {
		if validator.IsEmpty(li.Description) {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every line item requires a description",
			})
		}
		if li.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every line item quantity must be positive",
			})
		}
		if li.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "line item unit_price must not be negative",
			})
		}
	}
	return errs
}

type CreateInvoiceRequest struct {
	CustomerName string    `json:"customer_name"`
	IssueDate    string    `json:"issue_date"`
	DueDate      *string   `json:"due_date,omitempty"`
	Items        LineItems `json:"items"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.IssueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "issue_date",
			Message: "issue_date must be in YYYY-MM-DD format",
		})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}
	errs = validateItems(r.Items, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed issue and due dates. Validate must have passed.
func (r *CreateInvoiceRequest) Dates() (time.Time, *time.Time) {
	issue, _ := validator.IsValidDate(r.IssueDate)
	if r.DueDate == nil {
		return issue, nil
	}
	due, _ := validator.IsValidDate(*r.DueDate)
	return issue, &due
}

type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name"`
	OrderDate    string     `json:"order_date"`
	Items        LineItems  `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.OrderDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "order_date",
			Message: "order_date must be in YYYY-MM-DD format",
		})
	}
	errs = validateItems(r.Items, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateDeliveryChallanRequest struct {
	CustomerName    string     `json:"customer_name"`
	ChallanDate     string     `json:"challan_date"`
	Items           LineItems  `json:"items"`
	LinkedInvoiceID *string    `json:"linked_invoice_id,omitempty"`
}

func (r *CreateDeliveryChallanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.ChallanDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "challan_date",
			Message: "challan_date must be in YYYY-MM-DD format",
		})
	}
	if r.LinkedInvoiceID != nil && !validator.IsValidUUID(*r.LinkedInvoiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "linked_invoice_id",
			Message: "linked_invoice_id must be a valid UUID",
		})
	}
	errs = validateItems(r.Items, errs)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InvoiceFilter struct {
	CustomerName *string
	Status       *string
	FromDate     *time.Time
	ToDate       *time.Time
	Page         int
	Limit        int
}

type OrderFilter struct {
	CustomerName *string
	Status       *string
	Page         int
	Limit        int
}

type ChallanFilter struct {
	CustomerName *string
	Status       *string
	Page         int
	Limit        int
}
