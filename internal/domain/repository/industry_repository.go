package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry.
type IndustryRepository interface {
	List(ctx context.Context) ([]*entity.Industry, error)
	// GetByCode consulta la tabla industries directamente; nil, nil si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	// Create devuelve domain.ErrConflict si el código ya existe.
	Create(ctx context.Context, industry *entity.Industry) error
	Update(ctx context.Context, industry *entity.Industry) (bool, error)
	Delete(ctx context.Context, code string) (bool, error)
}
