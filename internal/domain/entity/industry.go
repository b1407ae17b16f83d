package entity

// Industry es un sector económico al que pueden pertenecer varias empresas.
type Industry struct {
	Code string
	Name string
}

// CompanyIndustry es la asociación muchos-a-muchos empresa ↔ sector.
// Un mismo par existe como máximo una vez.
type CompanyIndustry struct {
	CompCode     string
	IndustryCode string
}
