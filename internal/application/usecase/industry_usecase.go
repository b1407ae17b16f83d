package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/validation"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryUseCase casos de uso de sectores.
type IndustryUseCase struct {
	repos Repos
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repos Repos) *IndustryUseCase {
	return &IndustryUseCase{repos: repos}
}

// List devuelve los sectores con los códigos de sus empresas (dos consultas en total).
func (uc *IndustryUseCase) List(ctx context.Context) ([]dto.IndustryDetailResponse, error) {
	industries, err := uc.repos.Industries.List(ctx)
	if err != nil {
		return nil, err
	}
	links, err := uc.repos.Links.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toIndustryList(industries, links), nil
}

// Get devuelve el sector y sus empresas. Existe aunque no tenga empresas.
func (uc *IndustryUseCase) Get(ctx context.Context, code string) (*dto.IndustryDetailResponse, error) {
	industry, err := uc.repos.Industries.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if industry == nil {
		return nil, industryNotFound(code)
	}
	codes, err := uc.repos.Links.CompanyCodesFor(ctx, code)
	if err != nil {
		return nil, err
	}
	out := toIndustryDetail(industry, codes)
	return &out, nil
}

// Create persiste un sector con código elegido por el cliente.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	industry := &entity.Industry{Code: in.Code, Name: in.Name}
	if err := uc.repos.Industries.Create(ctx, industry); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflictf("ya existe un sector con código %q", in.Code)
		}
		return nil, err
	}
	out := toIndustryResponse(industry)
	return &out, nil
}

// Update renombra el sector.
func (uc *IndustryUseCase) Update(ctx context.Context, code string, in dto.UpdateIndustryRequest) (*dto.IndustryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	industry := &entity.Industry{Code: code, Name: in.Name}
	found, err := uc.repos.Industries.Update(ctx, industry)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, industryNotFound(code)
	}
	out := toIndustryResponse(industry)
	return &out, nil
}

// Delete elimina el sector y sus asociaciones.
func (uc *IndustryUseCase) Delete(ctx context.Context, code string) error {
	found, err := uc.repos.Industries.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return industryNotFound(code)
	}
	return nil
}

func industryNotFound(code string) error {
	return domain.NotFoundf("no existe el sector con código %q", code)
}
