package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type leaveGroupRepositoryImpl struct {
	db *database.DB
}

func NewLeaveGroupRepository(db *database.DB) leave.LeaveGroupRepository {
	return &leaveGroupRepositoryImpl{db: db}
}

func (r *leaveGroupRepositoryImpl) Create(ctx context.Context, group leave.LeaveGroup) (leave.LeaveGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_groups (id, name, policies, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, group.Name, group.Policies).Scan(
		&group.ID, &group.CreatedAt, &group.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveGroup{}, fmt.Errorf("failed to create leave group: %w", err)
	}

	return group, nil
}

func (r *leaveGroupRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, policies, created_at, updated_at
		FROM leave_groups
		WHERE id = $1
	`

	var g leave.LeaveGroup
	err := q.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.Policies, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveGroup{}, leave.ErrGroupNotFound
		}
		return leave.LeaveGroup{}, fmt.Errorf("failed to get leave group: %w", err)
	}

	return g, nil
}

func (r *leaveGroupRepositoryImpl) List(ctx context.Context) ([]leave.LeaveGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, policies, created_at, updated_at
		FROM leave_groups
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave groups: %w", err)
	}
	defer rows.Close()

	var groups []leave.LeaveGroup
	for rows.Next() {
		var g leave.LeaveGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Policies, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r *leaveGroupRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveGroupRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Policies != nil {
		setParts = append(setParts, fmt.Sprintf("policies = $%d", argIdx))
		args = append(args, leave.PolicySet(*req.Policies))
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE leave_groups
		SET %s
		WHERE id = $%d
	`, strings.Join(setParts, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update leave group with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrGroupNotFound
	}
	return nil
}

func (r *leaveGroupRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrGroupNotFound
	}
	return nil
}
