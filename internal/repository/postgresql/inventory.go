package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type factoryRepositoryImpl struct {
	db *database.DB
}

func NewFactoryRepository(db *database.DB) inventory.FactoryRepository {
	return &factoryRepositoryImpl{db: db}
}

func (r *factoryRepositoryImpl) Create(ctx context.Context, factory inventory.Factory) (inventory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO factories (id, name, contact, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, factory.Name, factory.Contact).Scan(
		&factory.ID, &factory.CreatedAt, &factory.UpdatedAt,
	)
	if err != nil {
		return inventory.Factory{}, fmt.Errorf("failed to create factory: %w", err)
	}

	return factory, nil
}

func (r *factoryRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact, created_at, updated_at
		FROM factories
		WHERE id = $1
	`

	var f inventory.Factory
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Contact, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Factory{}, inventory.ErrFactoryNotFound
		}
		return inventory.Factory{}, fmt.Errorf("failed to get factory: %w", err)
	}

	return f, nil
}

func (r *factoryRepositoryImpl) List(ctx context.Context) ([]inventory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact, created_at, updated_at
		FROM factories
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}
	defer rows.Close()

	var factories []inventory.Factory
	for rows.Next() {
		var f inventory.Factory
		if err := rows.Scan(&f.ID, &f.Name, &f.Contact, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}

	return factories, rows.Err()
}

func (r *factoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM factories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete factory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrFactoryNotFound
	}
	return nil
}

type machineRepositoryImpl struct {
	db *database.DB
}

func NewMachineRepository(db *database.DB) inventory.MachineRepository {
	return &machineRepositoryImpl{db: db}
}

const machineColumns = `
	m.id, m.model, m.serial, m.factory_id, m.warranty_months, m.delivery_date,
	m.status, m.created_at, m.updated_at,
	f.name AS factory_name`

func scanMachine(row pgx.Row) (inventory.Machine, error) {
	var m inventory.Machine
	err := row.Scan(
		&m.ID, &m.Model, &m.Serial, &m.FactoryID, &m.WarrantyMonths, &m.DeliveryDate,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
		&m.FactoryName,
	)
	return m, err
}

func (r *machineRepositoryImpl) Create(ctx context.Context, machine inventory.Machine) (inventory.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machines (
			id, model, serial, factory_id, warranty_months, delivery_date, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		machine.Model, machine.Serial, machine.FactoryID,
		machine.WarrantyMonths, machine.DeliveryDate, machine.Status,
	).Scan(&machine.ID, &machine.CreatedAt, &machine.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return inventory.Machine{}, inventory.ErrSerialExists
		}
		return inventory.Machine{}, fmt.Errorf("failed to create machine: %w", err)
	}

	return machine, nil
}

func (r *machineRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + machineColumns + `
		FROM machines m
		LEFT JOIN factories f ON m.factory_id = f.id
		WHERE m.id = $1
	`

	m, err := scanMachine(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Machine{}, inventory.ErrMachineNotFound
		}
		return inventory.Machine{}, fmt.Errorf("failed to get machine: %w", err)
	}
	return m, nil
}

func (r *machineRepositoryImpl) List(ctx context.Context, filter inventory.MachineFilter) ([]inventory.Machine, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Model != nil && *filter.Model != "" {
		conditions = append(conditions, fmt.Sprintf("(m.model ILIKE $%d OR m.serial ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Model+"%")
		argIdx++
	}
	if filter.FactoryID != nil && *filter.FactoryID != "" {
		conditions = append(conditions, fmt.Sprintf("m.factory_id = $%d", argIdx))
		args = append(args, *filter.FactoryID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("m.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM machines m WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count machines: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM machines m
		LEFT JOIN factories f ON m.factory_id = f.id
		WHERE %s
		ORDER BY m.model, m.serial
		LIMIT $%d OFFSET $%d
	`, machineColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list machines: %w", err)
	}
	defer rows.Close()

	var machines []inventory.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, 0, err
		}
		machines = append(machines, m)
	}

	return machines, total, rows.Err()
}

func (r *machineRepositoryImpl) Update(ctx context.Context, req inventory.UpdateMachineRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Model != nil {
		setParts = append(setParts, fmt.Sprintf("model = $%d", argIdx))
		args = append(args, *req.Model)
		argIdx++
	}
	if req.FactoryID != nil {
		setParts = append(setParts, fmt.Sprintf("factory_id = $%d", argIdx))
		args = append(args, *req.FactoryID)
		argIdx++
	}
	if req.WarrantyMonths != nil {
		setParts = append(setParts, fmt.Sprintf("warranty_months = $%d", argIdx))
		args = append(args, *req.WarrantyMonths)
		argIdx++
	}
	if req.DeliveryDate != nil {
		setParts = append(setParts, fmt.Sprintf("delivery_date = $%d", argIdx))
		args = append(args, *req.DeliveryDate)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE machines
		SET %s
		WHERE id = $%d
	`, strings.Join(setParts, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update machine with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrMachineNotFound
	}
	return nil
}

func (r *machineRepositoryImpl) SetStatus(ctx context.Context, id string, status inventory.MachineStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE machines
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set machine status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrMachineNotFound
	}
	return nil
}

func (r *machineRepositoryImpl) ListWithWarrantyExpiringBefore(ctx context.Context, asOf, cutoff time.Time) ([]inventory.Machine, error) {
	q := GetQuerier(ctx, r.db)

	// Expiry is derived from delivery_date + warranty_months, matching
	// Machine.WarrantyExpiry.
	query := `
		SELECT ` + machineColumns + `
		FROM machines m
		LEFT JOIN factories f ON m.factory_id = f.id
		WHERE m.delivery_date IS NOT NULL
		  AND m.warranty_months > 0
		  AND m.delivery_date + make_interval(months => m.warranty_months) > $1
		  AND m.delivery_date + make_interval(months => m.warranty_months) <= $2
		ORDER BY m.delivery_date
	`

	rows, err := q.Query(ctx, query, asOf, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring warranties: %w", err)
	}
	defer rows.Close()

	var machines []inventory.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return machines, rows.Err()
}

type challanRepositoryImpl struct {
	db *database.DB
}

func NewChallanRepository(db *database.DB) inventory.ChallanRepository {
	return &challanRepositoryImpl{db: db}
}

const challanColumns = `
	c.id, c.machine_id, c.customer_name, c.issued_at, c.due_back, c.status,
	c.created_at, c.updated_at,
	m.model AS machine_model, m.serial AS machine_serial`

func scanChallan(row pgx.Row) (inventory.Challan, error) {
	var c inventory.Challan
	err := row.Scan(
		&c.ID, &c.MachineID, &c.CustomerName, &c.IssuedAt, &c.DueBack, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		&c.MachineModel, &c.MachineSerial,
	)
	return c, err
}

func (r *challanRepositoryImpl) Create(ctx context.Context, challan inventory.Challan) (inventory.Challan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO demo_challans (
			id, machine_id, customer_name, issued_at, due_back, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		challan.MachineID, challan.CustomerName, challan.IssuedAt, challan.DueBack, challan.Status,
	).Scan(&challan.ID, &challan.CreatedAt, &challan.UpdatedAt)
	if err != nil {
		return inventory.Challan{}, fmt.Errorf("failed to create challan: %w", err)
	}

	return challan, nil
}

func (r *challanRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Challan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + challanColumns + `
		FROM demo_challans c
		INNER JOIN machines m ON c.machine_id = m.id
		WHERE c.id = $1
	`

	c, err := scanChallan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Challan{}, inventory.ErrChallanNotFound
		}
		return inventory.Challan{}, fmt.Errorf("failed to get challan: %w", err)
	}
	return c, nil
}

func (r *challanRepositoryImpl) List(ctx context.Context, filter inventory.ChallanFilter) ([]inventory.Challan, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.MachineID != nil && *filter.MachineID != "" {
		conditions = append(conditions, fmt.Sprintf("c.machine_id = $%d", argIdx))
		args = append(args, *filter.MachineID)
		argIdx++
	}
	if filter.CustomerName != nil && *filter.CustomerName != "" {
		conditions = append(conditions, fmt.Sprintf("c.customer_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.CustomerName+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM demo_challans c WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count challans: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM demo_challans c
		INNER JOIN machines m ON c.machine_id = m.id
		WHERE %s
		ORDER BY c.issued_at DESC
		LIMIT $%d OFFSET $%d
	`, challanColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list challans: %w", err)
	}
	defer rows.Close()

	var challans []inventory.Challan
	for rows.Next() {
		c, err := scanChallan(rows)
		if err != nil {
			return nil, 0, err
		}
		challans = append(challans, c)
	}

	return challans, total, rows.Err()
}

func (r *challanRepositoryImpl) Close(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE demo_challans
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := q.Exec(ctx, query, inventory.ChallanStatusClosed, id)
	if err != nil {
		return fmt.Errorf("failed to close challan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrChallanNotFound
	}
	return nil
}
