package dto

// CreateIndustryRequest entrada para crear una industria. El code se
// normaliza a slug antes de insertar.
type CreateIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryResponse salida de una industria.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryEnvelope envoltura {industry: {...}}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryListResponse envoltura {industries: [...]}.
type IndustryListResponse struct {
	Industries []IndustryResponse `json:"industries"`
}

// AssociateIndustryRequest cuerpo de la asociación empresa-industria.
// El comp_code viene en el path.
type AssociateIndustryRequest struct {
	IndCode string `json:"ind_code"`
}

// CompanyIndustryResponse registro de enlace insertado.
type CompanyIndustryResponse struct {
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}

// CompanyIndustryEnvelope envoltura {companies_industries: {...}}.
type CompanyIndustryEnvelope struct {
	CompaniesIndustries CompanyIndustryResponse `json:"companies_industries"`
}
