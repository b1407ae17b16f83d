package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/validation"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// RelationshipUseCase gestiona la asociación muchos a muchos empresa ↔ sector.
// Las comprobaciones previas corren en la misma transacción que la escritura y
// las restricciones UNIQUE/FK de la BD siguen siendo la última palabra.
type RelationshipUseCase struct {
	repos Repos
	tx    TxRunner
}

// NewRelationshipUseCase construye el caso de uso.
func NewRelationshipUseCase(repos Repos, tx TxRunner) *RelationshipUseCase {
	return &RelationshipUseCase{repos: repos, tx: tx}
}

// Link asocia la empresa al sector.
func (uc *RelationshipUseCase) Link(ctx context.Context, compCode, industryCode string) (*dto.CompanyIndustryResponse, error) {
	var link *entity.CompanyIndustry
	err := uc.tx.Run(ctx, func(r Repos) error {
		if err := ensureBothExist(ctx, r, compCode, industryCode); err != nil {
			return err
		}
		linked, err := r.Links.Exists(ctx, compCode, industryCode)
		if err != nil {
			return err
		}
		if linked {
			return alreadyLinked(compCode, industryCode)
		}
		link, err = r.Links.Link(ctx, compCode, industryCode)
		switch {
		case errors.Is(err, domain.ErrConflict):
			return alreadyLinked(compCode, industryCode)
		case errors.Is(err, domain.ErrNotFound):
			return domain.NotFoundf("la empresa %q o el sector %q ya no existen", compCode, industryCode)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toCompanyIndustryResponse(link)
	return &out, nil
}

// LinkFromIndustry atiende POST /industries/:code con {"company_code": ...}.
func (uc *RelationshipUseCase) LinkFromIndustry(ctx context.Context, industryCode string, in dto.LinkCompanyRequest) (*dto.CompanyIndustryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return uc.Link(ctx, in.CompanyCode, industryCode)
}

// Unlink deshace la asociación. NotFound si algún lado no existe o el par no estaba asociado.
func (uc *RelationshipUseCase) Unlink(ctx context.Context, compCode, industryCode string) error {
	return uc.tx.Run(ctx, func(r Repos) error {
		if err := ensureBothExist(ctx, r, compCode, industryCode); err != nil {
			return err
		}
		removed, err := r.Links.Unlink(ctx, compCode, industryCode)
		if err != nil {
			return err
		}
		if !removed {
			return domain.NotFoundf("la empresa %q no está asociada al sector %q", compCode, industryCode)
		}
		return nil
	})
}

// CompaniesFor devuelve los códigos de empresa asociados al sector.
func (uc *RelationshipUseCase) CompaniesFor(ctx context.Context, industryCode string) ([]string, error) {
	codes, err := uc.repos.Links.CompanyCodesFor(ctx, industryCode)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}

// IndustriesFor devuelve los sectores de la empresa.
func (uc *RelationshipUseCase) IndustriesFor(ctx context.Context, compCode string) ([]dto.IndustryResponse, error) {
	list, err := uc.repos.Links.IndustriesFor(ctx, compCode)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, i := range list {
		items = append(items, toIndustryResponse(i))
	}
	return items, nil
}

func ensureBothExist(ctx context.Context, r Repos, compCode, industryCode string) error {
	company, err := r.Companies.GetByCode(ctx, compCode)
	if err != nil {
		return err
	}
	if company == nil {
		return companyNotFound(compCode)
	}
	industry, err := r.Industries.GetByCode(ctx, industryCode)
	if err != nil {
		return err
	}
	if industry == nil {
		return industryNotFound(industryCode)
	}
	return nil
}

func alreadyLinked(compCode, industryCode string) error {
	return domain.Conflictf("la empresa %q ya está asociada al sector %q", compCode, industryCode)
}
