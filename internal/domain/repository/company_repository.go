package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los métodos de lectura devuelven
// (nil, nil) cuando la fila no existe.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Update modifica name y description (el code no es editable).
	// Devuelve (nil, nil) si ninguna fila coincide.
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	Delete(ctx context.Context, code string) error
}
