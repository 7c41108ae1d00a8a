package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain"
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
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Detalle de empresa (con facturas e industrias)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.CompanyDetailEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /companies/{code} [get]
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	out, err := h.uc.GetDetail(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundf("Can't find user with code of %s", code)
		}
		return err
	}
	return c.JSON(dto.CompanyDetailEnvelope{Company: *out})
}

// Create godoc
// @Summary      Crear empresa (code normalizado a slug)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyEnvelope
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyEnvelope{Company: *out})
}

// Update godoc
// @Summary      Editar empresa (name y description; el code es inmutable)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos editables"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Router       /companies/{code} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	out, err := h.uc.Update(c.Context(), code, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundf("Can't update company with code of %s", code)
		}
		return err
	}
	return c.JSON(dto.CompanyEnvelope{Company: *out})
}

// Delete godoc
// @Summary      Borrar empresa (éxito incluso si el code no existe)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.DeleteResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}
