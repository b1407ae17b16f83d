package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyIndustryRepository define el puerto de persistencia de la asociación empresa ↔ sector.
type CompanyIndustryRepository interface {
	Exists(ctx context.Context, compCode, industryCode string) (bool, error)
	// Link devuelve domain.ErrConflict si el par ya existe y domain.ErrNotFound si falla una FK.
	Link(ctx context.Context, compCode, industryCode string) (*entity.CompanyIndustry, error)
	Unlink(ctx context.Context, compCode, industryCode string) (bool, error)
	// ListAll devuelve todas las asociaciones ordenadas por sector y empresa.
	ListAll(ctx context.Context) ([]*entity.CompanyIndustry, error)
	CompanyCodesFor(ctx context.Context, industryCode string) ([]string, error)
	IndustriesFor(ctx context.Context, compCode string) ([]*entity.Industry, error)
}
