package usecase

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	"github.com/tu-usuario/biztime-api/pkg/slug"
)

// CompanyUseCase aplica las reglas de negocio para empresas. El detalle
// agregado necesita además los puertos de facturas e industrias.
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices, industries: industries}
}

// List devuelve todas las empresas (orden según el store, sin garantía explícita).
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, companyToResponse(c))
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// GetDetail arma la vista agregada de una empresa con tres lecturas
// secuenciales: fila base, ids de facturas y nombres de industrias.
// Devuelve domain.ErrNotFound si el code no existe; una empresa sin facturas
// ni industrias resuelve con listas vacías.
func (uc *CompanyUseCase) GetDetail(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	invoiceIDs, err := uc.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	industries, err := uc.industries.ListNamesByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}
	if industries == nil {
		industries = []string{}
	}
	detail := entity.CompanyDetail{
		Company:    *company,
		InvoiceIDs: invoiceIDs,
		Industries: industries,
	}
	return &dto.CompanyDetailResponse{
		Code:        detail.Code,
		Name:        detail.Name,
		Description: detail.Description,
		Invoices:    detail.InvoiceIDs,
		Industries:  detail.Industries,
	}, nil
}

// Create inserta una empresa normalizando el code a slug.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Code:        slug.Make(in.Code),
		Name:        in.Name,
		Description: in.Description,
	}
	inserted, err := uc.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	out := companyToResponse(inserted)
	return &out, nil
}

// Update modifica name y description. Devuelve domain.ErrNotFound si ninguna
// fila coincide con el code.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	updated, err := uc.companies.Update(ctx, &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	out := companyToResponse(updated)
	return &out, nil
}

// Delete borra por code sin comprobar existencia: borrar un code ausente
// también reporta éxito.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	return uc.companies.Delete(ctx, code)
}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
