package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceListEnvelope
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceListEnvelope{Invoices: list})
}

// Get godoc
// @Summary      Obtener factura con su empresa
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceDetailEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceDetailEnvelope{Invoice: *out})
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Empresa y monto"
// @Success      201   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Update godoc
// @Summary      Actualizar monto y estado de pago
// @Description  paid=true fija paid_date a hoy (si no estaba pagada); paid=false lo limpia; sin paid solo cambia amt.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Monto y pago"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}
