package entity

// Company representa una empresa. El code es el identificador primario
// (slug en minúsculas, inmutable después de la creación).
type Company struct {
	Code        string
	Name        string
	Description string
}

// CompanyDetail es la vista agregada de una empresa: fila base más las
// proyecciones de lectura (ids de facturas y nombres de industrias asociadas).
// No corresponde a columnas almacenadas.
type CompanyDetail struct {
	Company
	InvoiceIDs []int64
	Industries []string
}
