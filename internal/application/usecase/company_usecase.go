package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/validation"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repos Repos
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repos Repos) *CompanyUseCase {
	return &CompanyUseCase{repos: repos}
}

// List devuelve todas las empresas, sin facturas ni sectores.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repos.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return items, nil
}

// Get devuelve la empresa con sus facturas y los nombres de sus sectores.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.repos.Companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, companyNotFound(code)
	}
	invoices, err := uc.repos.Invoices.ListByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	industries, err := uc.repos.Links.IndustriesFor(ctx, code)
	if err != nil {
		return nil, err
	}
	out := toCompanyDetail(company, invoices, industries)
	return &out, nil
}

// Create deriva el código a partir del nombre y persiste la empresa.
// Un código repetido es Conflict; no se intenta desambiguar.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	code := slug.Make(in.Name)
	if code == "" {
		return nil, domain.Invalidf("name %q no genera un código válido", in.Name)
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repos.Companies.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflictf("ya existe una empresa con código %q", code)
		}
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// Update reemplaza nombre y descripción. El código no cambia.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	found, err := uc.repos.Companies.Update(ctx, company)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, companyNotFound(code)
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// Delete elimina la empresa junto con sus facturas y asociaciones.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	found, err := uc.repos.Companies.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return companyNotFound(code)
	}
	return nil
}

func companyNotFound(code string) error {
	return domain.NotFoundf("no existe la empresa con código %q", code)
}
