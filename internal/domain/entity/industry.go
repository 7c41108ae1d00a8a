package entity

// Industry representa un sector/industria. Code es slug único; Industry es la
// etiqueta para mostrar.
type Industry struct {
	Code     string
	Industry string
}

// CompanyIndustry es el registro de enlace muchos-a-muchos entre empresas e
// industrias. No tiene identidad propia más allá del par.
type CompanyIndustry struct {
	CompCode string
	IndCode  string
}
