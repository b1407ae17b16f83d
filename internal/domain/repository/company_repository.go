package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve nil, nil si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// Create devuelve domain.ErrConflict si el código ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// Update reemplaza name y description; false si el código no existe.
	Update(ctx context.Context, company *entity.Company) (bool, error)
	// Delete elimina la empresa (y en cascada sus facturas y asociaciones); false si no existe.
	Delete(ctx context.Context, code string) (bool, error)
}
