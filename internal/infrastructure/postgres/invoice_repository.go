package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// List devuelve todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Create inserta una factura; paid y add_date los aplican los defaults del
// store (false y CURRENT_DATE). Devuelve la fila completa.
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING `+invoiceColumns,
		compCode, amt,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &inv, nil
}

// Update fija amt, paid y paid_date por id. Devuelve (nil, nil) si ninguna
// fila coincide.
func (r *InvoiceRepo) Update(ctx context.Context, in *entity.Invoice) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, `
		UPDATE invoices SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING `+invoiceColumns,
		in.Amt, in.Paid, in.PaidDate, in.ID,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &inv, nil
}

// Delete elimina una factura por id (sin comprobar existencia).
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// ListIDsByCompany devuelve los ids de factura de una empresa.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
