package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListResponse
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear industria (code normalizado a slug)
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "code y etiqueta"
// @Success      201   {object}  dto.IndustryEnvelope
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryEnvelope{Industry: *out})
}

// Associate godoc
// @Summary      Asociar una industria a una empresa
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        comp_code  path  string  true  "Code de la empresa"
// @Param        body       body  dto.AssociateIndustryRequest  true  "ind_code"
// @Success      201        {object}  dto.CompanyIndustryEnvelope
// @Router       /industries/{comp_code} [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return NewError(fiber.StatusBadRequest, "%s", err.Error())
	}
	// c.Params devuelve un string que referencia el buffer reutilizable de
	// fasthttp; hay que copiarlo antes de que sobreviva a la petición.
	out, err := h.uc.Associate(c.Context(), utils.CopyString(c.Params("comp_code")), in.IndCode)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyIndustryEnvelope{CompaniesIndustries: *out})
}
