package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja sectores y su asociación con empresas.
type IndustryHandler struct {
	uc  *usecase.IndustryUseCase
	rel *usecase.RelationshipUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase, rel *usecase.RelationshipUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc, rel: rel}
}

// List godoc
// @Summary      Listar sectores con sus empresas
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListEnvelope
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryListEnvelope{Industries: list})
}

// Get godoc
// @Summary      Obtener sector con sus empresas
// @Tags         industries
// @Produce      json
// @Param        code  path  string  true  "Código del sector"
// @Success      200   {object}  dto.IndustryDetailEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/{code} [get]
func (h *IndustryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryDetailEnvelope{Industry: *out})
}

// Create godoc
// @Summary      Crear sector
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "Código y nombre"
// @Success      201   {object}  dto.IndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryEnvelope{Industry: *out})
}

// Link godoc
// @Summary      Asociar una empresa al sector
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        code  path  string                  true  "Código del sector"
// @Param        body  body  dto.LinkCompanyRequest  true  "Empresa a asociar"
// @Success      201   {object}  dto.CompanyIndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/{code} [post]
func (h *IndustryHandler) Link(c *fiber.Ctx) error {
	var in dto.LinkCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.rel.LinkFromIndustry(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyIndustryEnvelope{Relationship: *out})
}

// Unlink godoc
// @Summary      Desasociar una empresa del sector
// @Tags         industries
// @Produce      json
// @Param        code       path  string  true  "Código del sector"
// @Param        comp_code  path  string  true  "Código de la empresa"
// @Success      200        {object}  dto.DeletedResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /industries/{code}/companies/{comp_code} [delete]
func (h *IndustryHandler) Unlink(c *fiber.Ctx) error {
	if err := h.rel.Unlink(c.UserContext(), c.Params("comp_code"), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}

// Update godoc
// @Summary      Renombrar sector
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        code  path  string                     true  "Código del sector"
// @Param        body  body  dto.UpdateIndustryRequest  true  "Nombre"
// @Success      200   {object}  dto.IndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/{code} [put]
func (h *IndustryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryEnvelope{Industry: *out})
}

// Delete godoc
// @Summary      Eliminar sector
// @Tags         industries
// @Produce      json
// @Param        code  path  string  true  "Código del sector"
// @Success      200   {object}  dto.DeletedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/{code} [delete]
func (h *IndustryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}
