package dto

// CreateCompanyRequest entrada para crear una empresa. El code se normaliza
// a slug antes de insertar.
type CreateCompanyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para editar una empresa (el code no es editable).
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyEnvelope envoltura {company: {...}}.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyListResponse envoltura {companies: [...]}.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyDetailResponse vista agregada: fila base más proyecciones de lectura.
// Invoices e Industries se serializan como listas vacías, nunca null.
type CompanyDetailResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyDetailEnvelope envoltura {company: {...detalle...}}.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}
