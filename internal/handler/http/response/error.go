package response

import (
	"errors"
	"net/http"

	"github.com/meridian-erp/erp-backend-go/internal/domain/auth"
	"github.com/meridian-erp/erp-backend-go/internal/domain/document"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/domain/notification"
	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/domain/user"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidEmployeeCode):
		Unauthorized(w, "Invalid employee code or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrGoogleAccountUnknown):
		Unauthorized(w, "No account is linked to this Google identity")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeTerminated):
		Conflict(w, "Employee is terminated")

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrGroupNotFound):
		NotFound(w, "Leave group not found")
	case errors.Is(err, leave.ErrTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrTypeNameExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)

	// Reconciliation domain errors
	case errors.Is(err, reconciliation.ErrRequestNotFound):
		NotFound(w, "Reconciliation request not found")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this period")
	case errors.Is(err, payslip.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip already paid")

	// Petty cash domain errors
	case errors.Is(err, pettycash.ErrAccountNotFound):
		NotFound(w, "Petty cash account not found")
	case errors.Is(err, pettycash.ErrTransactionNotFound):
		NotFound(w, "Petty cash transaction not found")
	case errors.Is(err, pettycash.ErrInsufficientFunds):
		BadRequest(w, "Insufficient account funds", nil)

	// Inventory domain errors
	case errors.Is(err, inventory.ErrFactoryNotFound):
		NotFound(w, "Factory not found")
	case errors.Is(err, inventory.ErrMachineNotFound):
		NotFound(w, "Machine not found")
	case errors.Is(err, inventory.ErrChallanNotFound):
		NotFound(w, "Challan not found")
	case errors.Is(err, inventory.ErrSerialExists):
		Conflict(w, "Machine serial already exists")
	case errors.Is(err, inventory.ErrMachineNotInStock):
		Conflict(w, "Machine is not in stock")

	// Document domain errors
	case errors.Is(err, document.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, document.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, document.ErrChallanNotFound):
		NotFound(w, "Delivery challan not found")
	case errors.Is(err, document.ErrNumberExists):
		Conflict(w, "Document number already exists")
	case errors.Is(err, document.ErrInvoiceVoid):
		Conflict(w, "Invoice is void")

	// Settings domain errors
	case errors.Is(err, settings.ErrProfileNotFound):
		NotFound(w, "Company profile not configured")
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Financial settings not configured")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another user")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
