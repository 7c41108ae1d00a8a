package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// List devuelve todas las industrias.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	rows, err := r.q.Query(ctx, `SELECT code, industry FROM industries`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Industry
	for rows.Next() {
		var ind entity.Industry
		if err := rows.Scan(&ind.Code, &ind.Industry); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &ind)
	}
	return list, rows.Err()
}

// Create persiste una nueva industria y devuelve la fila insertada.
func (r *IndustryRepo) Create(ctx context.Context, ind *entity.Industry) (*entity.Industry, error) {
	var out entity.Industry
	err := r.q.QueryRow(ctx, `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry`,
		ind.Code, ind.Industry,
	).Scan(&out.Code, &out.Industry)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("industry code already exists: %w", err)
		}
		return nil, fmt.Errorf("insert industry: %w", err)
	}
	return &out, nil
}

// ListNamesByCompany devuelve los nombres de industria asociados a una
// empresa a través de la tabla de enlace. LEFT JOIN: una empresa sin
// industrias resuelve con lista vacía, no con error.
func (r *IndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.industry
		  FROM industries AS i
		  LEFT JOIN companies_industries AS ci ON i.code = ci.ind_code
		  LEFT JOIN companies AS c ON c.code = ci.comp_code
		 WHERE c.code = $1`,
		compCode,
	)
	if err != nil {
		return nil, fmt.Errorf("list company industries: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan industry name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Link inserta el registro de asociación empresa-industria y lo devuelve.
// No valida existencia de los codes; los FKs del store son los que mandan.
func (r *IndustryRepo) Link(ctx context.Context, compCode, indCode string) (*entity.CompanyIndustry, error) {
	var link entity.CompanyIndustry
	err := r.q.QueryRow(ctx, `
		INSERT INTO companies_industries (comp_code, ind_code)
		VALUES ($1, $2)
		RETURNING comp_code, ind_code`,
		compCode, indCode,
	).Scan(&link.CompCode, &link.IndCode)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("association already exists: %w", err)
		}
		return nil, fmt.Errorf("insert association: %w", err)
	}
	return &link, nil
}
