package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyListEnvelope{Companies: list})
}

// Get godoc
// @Summary      Obtener empresa con facturas y sectores
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Success      200   {object}  dto.CompanyDetailEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyDetailEnvelope{Company: *out})
}

// Create godoc
// @Summary      Crear empresa (el código se deriva del nombre)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyEnvelope{Company: *out})
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string                    true  "Código de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Nombre y descripción"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyEnvelope{Company: *out})
}

// Delete godoc
// @Summary      Eliminar empresa (con sus facturas y asociaciones)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Success      200   {object}  dto.DeletedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}
