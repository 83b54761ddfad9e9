package dto

// UpdateCompanyRequest body para PUT /api/company (la empresa sale del token).
type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
