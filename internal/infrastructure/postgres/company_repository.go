package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas ordenadas por código.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, description FROM companies ORDER BY code`)
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

// GetByCode obtiene una empresa por código.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update reemplaza nombre y descripción de una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE companies SET name = $2, description = $3 WHERE code = $1`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		return false, fmt.Errorf("update company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una empresa por código. Facturas y asociaciones caen por ON DELETE CASCADE.
func (r *CompanyRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
