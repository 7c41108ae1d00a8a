package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del store, con un
// InvoiceRepository atado a la tx. La implementación vive en infrastructure.
type TxRunner interface {
	Run(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}

// InvoiceUseCase aplica las reglas de negocio para facturas. La actualización
// (fetch + derivación de paid_date + update) corre dentro de una transacción
// para que dos PATCH concurrentes sobre la misma factura no dejen un
// paid_date inconsistente.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       TxRunner
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx}
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, invoiceToResponse(inv))
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get obtiene una factura por id. Devuelve domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := invoiceToResponse(inv)
	return &out, nil
}

// Create inserta una factura; paid (false) y add_date (fecha actual) los
// aplica el store como defaults.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.Create(ctx, in.CompCode, in.Amt)
	if err != nil {
		return nil, err
	}
	out := invoiceToResponse(inv)
	return &out, nil
}

// Update fija amt y paid, derivando paid_date del cambio de paid:
//
//	false → true : fecha calendario de hoy
//	true  → false: null
//	sin cambio   : se conserva el valor almacenado
//
// La fila se lee primero para conocer el paid vigente; si no existe se
// devuelve domain.ErrNotFound antes de tocar nada. Lectura y escritura van en
// la misma transacción.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var out dto.InvoiceResponse
	err := uc.tx.Run(ctx, func(invoices repository.InvoiceRepository) error {
		current, err := invoices.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		paidDate := current.PaidDate
		switch {
		case !current.Paid && in.Paid:
			today := truncateToDate(time.Now())
			paidDate = &today
		case current.Paid && !in.Paid:
			paidDate = nil
		}

		updated, err := invoices.Update(ctx, &entity.Invoice{
			ID:       id,
			Amt:      in.Amt,
			Paid:     in.Paid,
			PaidDate: paidDate,
		})
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		out = invoiceToResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete borra por id sin comprobar existencia (misma semántica que Company).
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.invoices.Delete(ctx, id)
}

// truncateToDate descarta el componente horario; paid_date y add_date son
// fechas calendario (DATE en el store).
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func invoiceToResponse(inv *entity.Invoice) dto.InvoiceResponse {
	var paidDate *string
	if inv.PaidDate != nil {
		s := inv.PaidDate.Format(dto.DateLayout)
		paidDate = &s
	}
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dto.DateLayout),
		PaidDate: paidDate,
	}
}
