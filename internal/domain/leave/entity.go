package leave

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// LeaveType is a company-defined leave category ("Casual", "Sick", ...).
// Policies reference it by name.
type LeaveType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy defines, per leave type inside a group, how many days per accounting
// year are allowed and whether applications may exceed the balance.
type Policy struct {
	LeaveTypeName   string  `json:"leave_type_name"`
	AllowedBalance  float64 `json:"allowed_balance"`
	NegativeBalance bool    `json:"negative_balance"`
}

// PolicySet is the JSONB policies column of a leave group.
type PolicySet []Policy

// Value implements driver.Valuer for database storage
func (p PolicySet) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *PolicySet) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PolicySet: invalid type")
	}

	return json.Unmarshal(bytes, p)
}

// ForType returns the policy covering the named leave type, if the group has
// one. A missing policy means the balance check is skipped entirely.
func (p PolicySet) ForType(leaveTypeName string) (Policy, bool) {
	for _, policy := range p {
		if policy.LeaveTypeName == leaveTypeName {
			return policy, true
		}
	}
	return Policy{}, false
}

// LeaveGroup is a named bundle of per-leave-type policies assigned to
// employees.
type LeaveGroup struct {
	ID        string
	Name      string
	Policies  PolicySet
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// LeaveApplication is an employee's request for a date range of a leave type.
// Days used are never stored on the record; they are derived on read from the
// employee's approved applications.
type LeaveApplication struct {
	ID              string
	EmployeeID      string
	LeaveType       string
	FromDate        time.Time
	ToDate          time.Time
	Reason          string
	Status          ApplicationStatus
	ApproverComment *string
	DecidedBy       *string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
