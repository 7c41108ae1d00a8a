package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest entrada para crear una factura. paid y add_date los
// asigna el store con sus defaults.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest entrada para editar una factura. paid_date se deriva
// del cambio de paid, no lo envía el cliente.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid bool            `json:"paid"`
}

// InvoiceResponse salida de una factura. Las fechas van como fecha calendario
// (YYYY-MM-DD); paid_date es null mientras la factura no esté pagada.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceEnvelope envoltura {invoice: {...}}.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceListResponse envoltura {invoices: [...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
