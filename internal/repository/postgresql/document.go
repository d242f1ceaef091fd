package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/document"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) document.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv document.Invoice) (document.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (
			id, number, customer_name, issue_date, due_date, items, total, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		inv.Number, inv.CustomerName, inv.IssueDate, inv.DueDate, inv.Items, inv.Total, inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return document.Invoice{}, document.ErrNumberExists
		}
		return document.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return inv, nil
}

func scanInvoice(row pgx.Row) (document.Invoice, error) {
	var inv document.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.CustomerName, &inv.IssueDate, &inv.DueDate,
		&inv.Items, &inv.Total, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

const invoiceColumns = `id, number, customer_name, issue_date, due_date, items, total, status, created_at, updated_at`

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id string) (document.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	inv, err := scanInvoice(q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.Invoice{}, document.ErrInvoiceNotFound
		}
		return document.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

func (r *invoiceRepositoryImpl) GetByNumber(ctx context.Context, number string) (document.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	inv, err := scanInvoice(q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE number = $1`, number))
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.Invoice{}, document.ErrInvoiceNotFound
		}
		return document.Invoice{}, fmt.Errorf("failed to get invoice by number: %w", err)
	}
	return inv, nil
}

func (r *invoiceRepositoryImpl) List(ctx context.Context, filter document.InvoiceFilter) ([]document.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerName != nil && *filter.CustomerName != "" {
		conditions = append(conditions, fmt.Sprintf("customer_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.CustomerName+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("issue_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("issue_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM invoices
		WHERE %s
		ORDER BY issue_date DESC, number DESC
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []document.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, rows.Err()
}

func (r *invoiceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status document.InvoiceStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepositoryImpl) NextSequence(ctx context.Context, year int) (int, error) {
	return nextDocumentSequence(ctx, GetQuerier(ctx, r.db), "invoice", year)
}

// nextDocumentSequence bumps and returns the per-kind per-year counter. The
// upsert takes a row lock, so concurrent callers inside transactions serialize
// and numbers never repeat.
func nextDocumentSequence(ctx context.Context, q database.Querier, kind string, year int) (int, error) {
	query := `
		INSERT INTO document_sequences (kind, year, counter)
		VALUES ($1, $2, 1)
		ON CONFLICT (kind, year)
		DO UPDATE SET counter = document_sequences.counter + 1
		RETURNING counter
	`

	var counter int
	if err := q.QueryRow(ctx, query, kind, year).Scan(&counter); err != nil {
		return 0, fmt.Errorf("failed to get next %s sequence: %w", kind, err)
	}
	return counter, nil
}

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) document.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

const orderColumns = `id, number, customer_name, order_date, items, total, status, created_at, updated_at`

func scanOrder(row pgx.Row) (document.Order, error) {
	var ord document.Order
	err := row.Scan(
		&ord.ID, &ord.Number, &ord.CustomerName, &ord.OrderDate,
		&ord.Items, &ord.Total, &ord.Status, &ord.CreatedAt, &ord.UpdatedAt,
	)
	return ord, err
}

func (r *orderRepositoryImpl) Create(ctx context.Context, ord document.Order) (document.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (
			id, number, customer_name, order_date, items, total, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ord.Number, ord.CustomerName, ord.OrderDate, ord.Items, ord.Total, ord.Status,
	).Scan(&ord.ID, &ord.CreatedAt, &ord.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return document.Order{}, document.ErrNumberExists
		}
		return document.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return ord, nil
}

func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (document.Order, error) {
	q := GetQuerier(ctx, r.db)

	ord, err := scanOrder(q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.Order{}, document.ErrOrderNotFound
		}
		return document.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return ord, nil
}

func (r *orderRepositoryImpl) List(ctx context.Context, filter document.OrderFilter) ([]document.Order, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerName != nil && *filter.CustomerName != "" {
		conditions = append(conditions, fmt.Sprintf("customer_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.CustomerName+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE %s
		ORDER BY order_date DESC, number DESC
		LIMIT $%d OFFSET $%d
	`, orderColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []document.Order
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, ord)
	}

	return orders, total, rows.Err()
}

func (r *orderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status document.OrderStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepositoryImpl) NextSequence(ctx context.Context, year int) (int, error) {
	return nextDocumentSequence(ctx, GetQuerier(ctx, r.db), "order", year)
}

type deliveryChallanRepositoryImpl struct {
	db *database.DB
}

func NewDeliveryChallanRepository(db *database.DB) document.DeliveryChallanRepository {
	return &deliveryChallanRepositoryImpl{db: db}
}

const deliveryChallanColumns = `id, number, customer_name, challan_date, items, linked_invoice_id, status, created_at, updated_at`

func scanDeliveryChallan(row pgx.Row) (document.DeliveryChallan, error) {
	var ch document.DeliveryChallan
	err := row.Scan(
		&ch.ID, &ch.Number, &ch.CustomerName, &ch.ChallanDate,
		&ch.Items, &ch.LinkedInvoiceID, &ch.Status, &ch.CreatedAt, &ch.UpdatedAt,
	)
	return ch, err
}

func (r *deliveryChallanRepositoryImpl) Create(ctx context.Context, ch document.DeliveryChallan) (document.DeliveryChallan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO delivery_challans (
			id, number, customer_name, challan_date, items, linked_invoice_id, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ch.Number, ch.CustomerName, ch.ChallanDate, ch.Items, ch.LinkedInvoiceID, ch.Status,
	).Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return document.DeliveryChallan{}, document.ErrNumberExists
		}
		return document.DeliveryChallan{}, fmt.Errorf("failed to create delivery challan: %w", err)
	}

	return ch, nil
}

func (r *deliveryChallanRepositoryImpl) GetByID(ctx context.Context, id string) (document.DeliveryChallan, error) {
	q := GetQuerier(ctx, r.db)

	ch, err := scanDeliveryChallan(q.QueryRow(ctx, `SELECT `+deliveryChallanColumns+` FROM delivery_challans WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.DeliveryChallan{}, document.ErrChallanNotFound
		}
		return document.DeliveryChallan{}, fmt.Errorf("failed to get delivery challan: %w", err)
	}
	return ch, nil
}

func (r *deliveryChallanRepositoryImpl) List(ctx context.Context, filter document.ChallanFilter) ([]document.DeliveryChallan, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerName != nil && *filter.CustomerName != "" {
		conditions = append(conditions, fmt.Sprintf("customer_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.CustomerName+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM delivery_challans WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count delivery challans: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM delivery_challans
		WHERE %s
		ORDER BY challan_date DESC, number DESC
		LIMIT $%d OFFSET $%d
	`, deliveryChallanColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list delivery challans: %w", err)
	}
	defer rows.Close()

	var challans []document.DeliveryChallan
	for rows.Next() {
		ch, err := scanDeliveryChallan(rows)
		if err != nil {
			return nil, 0, err
		}
		challans = append(challans, ch)
	}

	return challans, total, rows.Err()
}

func (r *deliveryChallanRepositoryImpl) UpdateStatus(ctx context.Context, id string, status document.ChallanStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE delivery_challans SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update delivery challan status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrChallanNotFound
	}
	return nil
}

func (r *deliveryChallanRepositoryImpl) NextSequence(ctx context.Context, year int) (int, error) {
	return nextDocumentSequence(ctx, GetQuerier(ctx, r.db), "delivery_challan", year)
}
