package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y el
// enlace empresa-industria.
type IndustryRepository interface {
	List(ctx context.Context) ([]*entity.Industry, error)
	Create(ctx context.Context, ind *entity.Industry) (*entity.Industry, error)
	// ListNamesByCompany devuelve los nombres de industria asociados a una empresa
	// (lista vacía si no hay asociaciones).
	ListNamesByCompany(ctx context.Context, compCode string) ([]string, error)
	// Link inserta el registro de asociación. No valida existencia de ninguno de
	// los dos lados; la integridad referencial la impone el store.
	Link(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error)
}
