package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/biztime-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa sobre repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app        *fiber.App
	companies  *fakeCompanyRepo
	invoices   *fakeInvoiceRepo
	industries *fakeIndustryRepo
}

// buildTestApp arma la aplicación con el ErrorHandler central y el router
// reales, y fakes en memoria como store.
func buildTestApp() *testEnv {
	companies := &fakeCompanyRepo{}
	invoices := &fakeInvoiceRepo{}
	industries := &fakeIndustryRepo{}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(companies, invoices, industries),
		InvoiceUC:  usecase.NewInvoiceUseCase(invoices, &fakeTxRunner{invoices: invoices}),
		IndustryUC: usecase.NewIndustryUseCase(industries),
	})

	return &testEnv{app: app, companies: companies, invoices: invoices, industries: industries}
}

// doRequest lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON en un map genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func todayStr() string {
	return time.Now().Format("2006-01-02")
}

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
			break
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	nextID   int64
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.invoices, nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	r.nextID++
	y, m, d := time.Now().Date()
	inv := &entity.Invoice{
		ID:       r.nextID,
		CompCode: compCode,
		Amt:      amt,
		AddDate:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	r.invoices = append(r.invoices, inv)
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, in *entity.Invoice) (*entity.Invoice, error) {
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
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
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
}

func (r *fakeIndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	return r.industries, nil
}

func (r *fakeIndustryRepo) Create(ctx context.Context, ind *entity.Industry) (*entity.Industry, error) {
	cp := *ind
	r.industries = append(r.industries, &cp)
	out := cp
	return &out, nil
}

func (r *fakeIndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
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
	link := entity.CompanyIndustry{CompCode: compCode, IndCode: indCode}
	r.links = append(r.links, link)
	return &link, nil
}

type fakeTxRunner struct {
	invoices *fakeInvoiceRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	return fn(r.invoices)
}
