package usecase

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	"github.com/tu-usuario/biztime-api/pkg/slug"
)

// IndustryUseCase aplica las reglas de negocio para industrias y su
// asociación con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List devuelve todas las industrias.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.industries.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, dto.IndustryResponse{Code: ind.Code, Industry: ind.Industry})
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Create inserta una industria normalizando el code a slug.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	inserted, err := uc.industries.Create(ctx, &entity.Industry{
		Code:     slug.Make(in.Code),
		Industry: in.Industry,
	})
	if err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Code: inserted.Code, Industry: inserted.Industry}, nil
}

// Associate inserta el registro de enlace empresa-industria. No valida la
// existencia de ninguno de los dos codes; la integridad referencial queda en
// manos del store.
func (uc *IndustryUseCase) Associate(ctx context.Context, compCode, indCode string) (*dto.CompanyIndustryResponse, error) {
	link, err := uc.industries.Link(ctx, compCode, indCode)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyIndustryResponse{CompCode: link.CompCode, IndCode: link.IndCode}, nil
}
