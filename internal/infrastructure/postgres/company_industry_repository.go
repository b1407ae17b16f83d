package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.CompanyIndustryRepository = (*CompanyIndustryRepo)(nil)

// CompanyIndustryRepo implementación de la asociación empresa ↔ sector (tabla companies_industries).
type CompanyIndustryRepo struct {
	q Querier
}

// NewCompanyIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyIndustryRepository(q Querier) *CompanyIndustryRepo {
	return &CompanyIndustryRepo{q: q}
}

// Exists informa si el par ya está asociado.
func (r *CompanyIndustryRepo) Exists(ctx context.Context, compCode, industryCode string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM companies_industries
			 WHERE comp_code     = $1
			   AND industry_code = $2
		)`
	var linked bool
	if err := r.q.QueryRow(ctx, query, compCode, industryCode).Scan(&linked); err != nil {
		return false, fmt.Errorf("check link %s/%s: %w", compCode, industryCode, err)
	}
	return linked, nil
}

// Link asocia la empresa al sector. La restricción UNIQUE es la fuente de verdad ante carreras.
func (r *CompanyIndustryRepo) Link(ctx context.Context, compCode, industryCode string) (*entity.CompanyIndustry, error) {
	var link entity.CompanyIndustry
	err := r.q.QueryRow(ctx,
		`INSERT INTO companies_industries (comp_code, industry_code) VALUES ($1, $2) RETURNING comp_code, industry_code`,
		compCode, industryCode,
	).Scan(&link.CompCode, &link.IndustryCode)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrConflict
		case isForeignKeyViolation(err):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}
	return &link, nil
}

// Unlink elimina la asociación; false si el par no estaba asociado.
func (r *CompanyIndustryRepo) Unlink(ctx context.Context, compCode, industryCode string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM companies_industries WHERE comp_code = $1 AND industry_code = $2`,
		compCode, industryCode,
	)
	if err != nil {
		return false, fmt.Errorf("delete link: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListAll devuelve todas las asociaciones (para enriquecer el listado de sectores sin N+1).
func (r *CompanyIndustryRepo) ListAll(ctx context.Context) ([]*entity.CompanyIndustry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT comp_code, industry_code FROM companies_industries ORDER BY industry_code, comp_code`)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyIndustry
	for rows.Next() {
		var link entity.CompanyIndustry
		if err := rows.Scan(&link.CompCode, &link.IndustryCode); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		list = append(list, &link)
	}
	return list, rows.Err()
}

// CompanyCodesFor devuelve los códigos de las empresas asociadas a un sector.
func (r *CompanyIndustryRepo) CompanyCodesFor(ctx context.Context, industryCode string) ([]string, error) {
	query := `
		SELECT c.code
		  FROM companies_industries AS ci
		  JOIN companies AS c ON c.code = ci.comp_code
		 WHERE ci.industry_code = $1
		 ORDER BY c.code`
	rows, err := r.q.Query(ctx, query, industryCode)
	if err != nil {
		return nil, fmt.Errorf("companies for %s: %w", industryCode, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan company code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// IndustriesFor devuelve los sectores de una empresa.
func (r *CompanyIndustryRepo) IndustriesFor(ctx context.Context, compCode string) ([]*entity.Industry, error) {
	query := `
		SELECT i.code, i.name
		  FROM companies_industries AS ci
		  JOIN industries AS i ON i.code = ci.industry_code
		 WHERE ci.comp_code = $1
		 ORDER BY i.code`
	rows, err := r.q.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("industries for %s: %w", compCode, err)
	}
	defer rows.Close()

	var list []*entity.Industry
	for rows.Next() {
		var i entity.Industry
		if err := rows.Scan(&i.Code, &i.Name); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
