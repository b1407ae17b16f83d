package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository (usable con pool o tx).
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador de persistencia para sectores.
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// List devuelve todos los sectores ordenados por código.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name FROM industries ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
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

// GetByCode obtiene un sector por código.
func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	var i entity.Industry
	err := r.q.QueryRow(ctx, `SELECT code, name FROM industries WHERE code = $1`, code).Scan(&i.Code, &i.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &i, nil
}

// Create persiste un sector nuevo.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx, `INSERT INTO industries (code, name) VALUES ($1, $2)`, industry.Code, industry.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// Update cambia el nombre de un sector.
func (r *IndustryRepo) Update(ctx context.Context, industry *entity.Industry) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE industries SET name = $2 WHERE code = $1`, industry.Code, industry.Name)
	if err != nil {
		return false, fmt.Errorf("update industry: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un sector; sus asociaciones caen por ON DELETE CASCADE.
func (r *IndustryRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM industries WHERE code = $1`, code)
	if err != nil {
		return false, fmt.Errorf("delete industry: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
