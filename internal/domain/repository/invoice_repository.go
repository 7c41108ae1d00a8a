package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// Create inserta con defaults del store (paid=false, add_date=CURRENT_DATE)
	// y devuelve la fila completa resultante.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	// Update fija amt, paid y paid_date. Devuelve (nil, nil) si ninguna fila coincide.
	Update(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	Delete(ctx context.Context, id int64) error
	// ListIDsByCompany devuelve los ids de factura de una empresa (para el detalle agregado).
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
}
