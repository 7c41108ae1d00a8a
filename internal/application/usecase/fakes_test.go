package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies []*entity.Company
	err       error // si no es nil, todos los métodos fallan con él
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.companies, nil
}

func (r *fakeCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.companies {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	cp := *company
	r.companies = append(r.companies, &cp)
	out := cp
	return &out, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.companies {
		if c.Code == company.Code {
			c.Name = company.Name
			c.Description = company.Description
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, code string) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.companies {
		if c.Code == code {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return nil // borrar un code ausente también es éxito
}

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	nextID   int64
	err      error
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.invoices, nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	inv := &entity.Invoice{
		ID:       r.nextID,
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  today(),
	}
	r.invoices = append(r.invoices, inv)
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, in *entity.Invoice) (*entity.Invoice, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, inv := range r.invoices {
		if inv.ID == in.ID {
			inv.Amt = in.Amt
			inv.Paid = in.Paid
			inv.PaidDate = in.PaidDate
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []int64
	for _, inv := range r.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, inv.ID)
		}
	}
	return ids, nil
}

type fakeIndustryRepo struct {
	industries []*entity.Industry
	links      []entity.CompanyIndustry
	err        error
}

func (r *fakeIndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.industries, nil
}

func (r *fakeIndustryRepo) Create(ctx context.Context, ind *entity.Industry) (*entity.Industry, error) {
	if r.err != nil {
		return nil, r.err
	}
	cp := *ind
	r.industries = append(r.industries, &cp)
	out := cp
	return &out, nil
}

func (r *fakeIndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var names []string
	for _, l := range r.links {
		if l.CompCode != compCode {
			continue
		}
		for _, ind := range r.industries {
			if ind.Code == l.IndCode {
				names = append(names, ind.Industry)
			}
		}
	}
	return names, nil
}

func (r *fakeIndustryRepo) Link(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error) {
	if r.err != nil {
		return nil, r.err
	}
	link := entity.CompanyIndustry{CompCode: compCode, IndCode: indCode}
	r.links = append(r.links, link)
	return &link, nil
}

// fakeTxRunner ejecuta el callback directamente contra el repo en memoria
// (sin transacción real).
type fakeTxRunner struct {
	invoices *fakeInvoiceRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	return fn(r.invoices)
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
