package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/reconciliation"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type reconciliationRepositoryImpl struct {
	db *database.DB
}

func NewReconciliationRepository(db *database.DB) reconciliation.RequestRepository {
	return &reconciliationRepositoryImpl{db: db}
}

const reconciliationColumns = `
	rr.id, rr.employee_id, rr.attendance_date, rr.kind,
	rr.requested_in_time, rr.requested_out_time,
	rr.requested_break_start, rr.requested_break_end,
	rr.reason, rr.status, rr.reviewer_comment, rr.reviewed_by, rr.reviewed_at,
	rr.created_at, rr.updated_at,
	e.full_name AS employee_name`

func scanReconciliation(row pgx.Row) (reconciliation.Request, error) {
	var req reconciliation.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.AttendanceDate, &req.Kind,
		&req.RequestedInTime, &req.RequestedOutTime,
		&req.RequestedBreakStart, &req.RequestedBreakEnd,
		&req.Reason, &req.Status, &req.ReviewerComment, &req.ReviewedBy, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	return req, err
}

func (r *reconciliationRepositoryImpl) Create(ctx context.Context, req reconciliation.Request) (reconciliation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reconciliation_requests (
			id, employee_id, attendance_date, kind,
			requested_in_time, requested_out_time,
			requested_break_start, requested_break_end,
			reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5,
			$6, $7,
			$8, $9, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.AttendanceDate, req.Kind,
		req.RequestedInTime, req.RequestedOutTime,
		req.RequestedBreakStart, req.RequestedBreakEnd,
		req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return reconciliation.Request{}, fmt.Errorf("failed to create reconciliation request: %w", err)
	}

	return req, nil
}

func (r *reconciliationRepositoryImpl) GetByID(ctx context.Context, id string) (reconciliation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reconciliationColumns + `
		FROM reconciliation_requests rr
		INNER JOIN employees e ON rr.employee_id = e.id
		WHERE rr.id = $1
	`

	req, err := scanReconciliation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reconciliation.Request{}, reconciliation.ErrRequestNotFound
		}
		return reconciliation.Request{}, fmt.Errorf("failed to get reconciliation request: %w", err)
	}
	return req, nil
}

func (r *reconciliationRepositoryImpl) List(ctx context.Context, filter reconciliation.RequestFilter) ([]reconciliation.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("rr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Kind != nil && *filter.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("rr.kind = $%d", argIdx))
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("rr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("rr.attendance_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("rr.attendance_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM reconciliation_requests rr WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reconciliation requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM reconciliation_requests rr
		INNER JOIN employees e ON rr.employee_id = e.id
		WHERE %s
		ORDER BY rr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, reconciliationColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reconciliation requests: %w", err)
	}
	defer rows.Close()

	var requests []reconciliation.Request
	for rows.Next() {
		req, err := scanReconciliation(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

func (r *reconciliationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status reconciliation.Status, comment *string, reviewedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reconciliation_requests
		SET status = $1, reviewer_comment = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $4
	`
	tag, err := q.Exec(ctx, query, status, comment, reviewedBy, id)
	if err != nil {
		return fmt.Errorf("failed to update reconciliation request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reconciliation.ErrRequestNotFound
	}
	return nil
}
