package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	IndustryUC *usecase.IndustryUseCase
}

// Router registra las rutas de la API y el 404 por defecto. Debe llamarse al
// final del bootstrap, después de las rutas auxiliares (health, docs).
func Router(app *fiber.App, deps RouterDeps) {
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:code", companyHandler.GetByCode)
	companies.Post("/", companyHandler.Create)
	companies.Patch("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Post("/:comp_code", industryHandler.Associate)

	// Cualquier ruta sin handler levanta la señal 404 genérica.
	app.Use(func(c *fiber.Ctx) error {
		return NewError(fiber.StatusNotFound, "Not Found")
	})
}
