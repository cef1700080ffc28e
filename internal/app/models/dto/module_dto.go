package dto

import "github.com/kdattani/gradebook/internal/app/models"

// ModuleResponse represents basic module information
type ModuleResponse struct {
	ID        int64  `json:"id" example:"1"`
	Code      string `json:"code" example:"CS101"`
	Name      string `json:"name" example:"Intro to Programming"`
	Mandatory bool   `json:"mandatory" example:"true"`
}

// CreateModuleRequest represents module creation data
type CreateModuleRequest struct {
	Code      string `json:"code" binding:"required,max=10,modulecode" example:"CS101"`
	Name      string `json:"name" binding:"required,max=100" example:"Intro to Programming"`
	Mandatory bool   `json:"mandatory" example:"true"`
}

// ModuleListResponse represents the full module catalog
type ModuleListResponse struct {
	Modules []ModuleResponse `json:"modules"`
}

// FromModule converts a models.Module to a ModuleResponse
func FromModule(m models.Module) ModuleResponse {
	return ModuleResponse{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Mandatory: m.Mandatory,
	}
}

// FromModules converts a module slice, never returning nil so list
// responses serialize as [] rather than null.
func FromModules(modules []models.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, FromModule(m))
	}
	return out
}
