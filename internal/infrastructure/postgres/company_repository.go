package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, description FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByCode obtiene una empresa por code. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva empresa y devuelve la fila insertada.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`,
		company.Code, company.Name, company.Description,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("company code already exists: %w", err)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &c, nil
}

// Update actualiza name y description por code. Devuelve (nil, nil) si
// ninguna fila coincide.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, `
		UPDATE companies SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description`,
		company.Name, company.Description, company.Code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// Delete elimina una empresa por code (sin comprobar existencia).
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
