package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type leaveApplicationRepositoryImpl struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.LeaveApplicationRepository {
	return &leaveApplicationRepositoryImpl{db: db}
}

const applicationColumns = `
	la.id, la.employee_id, la.leave_type, la.from_date, la.to_date, la.reason,
	la.status, la.approver_comment, la.decided_by, la.decided_at,
	la.created_at, la.updated_at,
	e.full_name AS employee_name`

func scanApplication(row pgx.Row) (leave.LeaveApplication, error) {
	var app leave.LeaveApplication
	err := row.Scan(
		&app.ID, &app.EmployeeID, &app.LeaveType, &app.FromDate, &app.ToDate, &app.Reason,
		&app.Status, &app.ApproverComment, &app.DecidedBy, &app.DecidedAt,
		&app.CreatedAt, &app.UpdatedAt,
		&app.EmployeeName,
	)
	return app, err
}

func (r *leaveApplicationRepositoryImpl) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_applications (
			id, employee_id, leave_type, from_date, to_date, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.EmployeeID, app.LeaveType, app.FromDate, app.ToDate, app.Reason, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return app, nil
}

func (r *leaveApplicationRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationColumns + `
		FROM leave_applications la
		INNER JOIN employees e ON la.employee_id = e.id
		WHERE la.id = $1
	`

	app, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveApplication{}, leave.ErrApplicationNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application: %w", err)
	}
	return app, nil
}

func (r *leaveApplicationRepositoryImpl) GetApprovedByEmployeeAndType(ctx context.Context, employeeID, leaveType string) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationColumns + `
		FROM leave_applications la
		INNER JOIN employees e ON la.employee_id = e.id
		WHERE la.employee_id = $1 AND la.leave_type = $2 AND la.status = $3
		ORDER BY la.from_date
	`

	rows, err := q.Query(ctx, query, employeeID, leaveType, leave.ApplicationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved applications: %w", err)
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (r *leaveApplicationRepositoryImpl) List(ctx context.Context, filter leave.ApplicationFilter) ([]leave.LeaveApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("la.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		conditions = append(conditions, fmt.Sprintf("la.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("la.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("la.to_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("la.from_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM leave_applications la WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications la
		INNER JOIN employees e ON la.employee_id = e.id
		WHERE %s
		ORDER BY la.created_at DESC
		LIMIT $%d OFFSET $%d
	`, applicationColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}

	return apps, total, rows.Err()
}

func (r *leaveApplicationRepositoryImpl) Update(ctx context.Context, req leave.UpdateApplicationRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.LeaveType != nil {
		setParts = append(setParts, fmt.Sprintf("leave_type = $%d", argIdx))
		args = append(args, *req.LeaveType)
		argIdx++
	}
	if req.FromDate != nil {
		setParts = append(setParts, fmt.Sprintf("from_date = $%d", argIdx))
		args = append(args, *req.FromDate)
		argIdx++
	}
	if req.ToDate != nil {
		setParts = append(setParts, fmt.Sprintf("to_date = $%d", argIdx))
		args = append(args, *req.ToDate)
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE leave_applications
		SET %s
		WHERE id = $%d
	`, strings.Join(setParts, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave application with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}
	return nil
}

func (r *leaveApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.ApplicationStatus, comment *string, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $1, approver_comment = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $4
	`
	tag, err := q.Exec(ctx, query, status, comment, decidedBy, id)
	if err != nil {
		return fmt.Errorf("failed to update leave application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}
	return nil
}

func (r *leaveApplicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}
	return nil
}
