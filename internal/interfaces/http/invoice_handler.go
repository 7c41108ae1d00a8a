package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler inyectando el caso de uso.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por id
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "Id de la factura"
// @Success      200  {object}  dto.InvoiceEnvelope
// @Failure      404  {object}  ErrorEnvelope
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseInvoiceID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundf("Can't find user with id of %d", id)
		}
		return err
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Create godoc
// @Summary      Crear factura (paid y add_date por defaults del store)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "comp_code y amt"
// @Success      201   {object}  dto.InvoiceEnvelope
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Update godoc
// @Summary      Editar factura (paid_date derivado del cambio de paid)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Id de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "amt y paid"
// @Success      200   {object}  dto.InvoiceEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /invoices/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseInvoiceID(c)
	if err != nil {
		return err
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundf("Can't update invoice with id of %d", id)
		}
		return err
	}
	return c.JSON(dto.InvoiceEnvelope{Invoice: *out})
}

// Delete godoc
// @Summary      Borrar factura (éxito incluso si el id no existe)
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "Id de la factura"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseInvoiceID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}

// parseInvoiceID lee el :id del path. Un id no numérico no puede coincidir
// con ninguna factura, así que sale como 404 con el mensaje estándar.
func parseInvoiceID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NotFoundf("Can't find user with id of %s", raw)
	}
	return id, nil
}
