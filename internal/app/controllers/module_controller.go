package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models"
	"github.com/kdattani/gradebook/internal/app/models/dto"
	"github.com/kdattani/gradebook/internal/app/services"
	"github.com/kdattani/gradebook/internal/middleware"
)

// ModuleController handles module catalog operations
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
	}
}

// CreateModule handles module creation
// @Summary Create a new module
// @Description Creates a new module in the catalog. Codes are unique.
// @Tags modules
// @Accept json
// @Produce json
// @Param request body dto.CreateModuleRequest true "Module information"
// @Success 201 {object} dto.APIResponse{data=dto.ModuleResponse} "Module created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Module code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	module := models.Module{
		Code:      req.Code,
		Name:      req.Name,
		Mandatory: req.Mandatory,
	}

	id, err := c.moduleService.CreateModule(ctx, &module)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	module.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromModule(module)))
}

// GetModuleByCode retrieves a module by code
// @Summary Get module details
// @Description Retrieves a module from the catalog by its code
// @Tags modules
// @Accept json
// @Produce json
// @Param code path string true "Module code" maxLength(10)
// @Success 200 {object} dto.APIResponse{data=dto.ModuleResponse} "Module retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{code} [get]
func (c *ModuleController) GetModuleByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	module, err := c.moduleService.GetModuleByCode(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromModule(*module)))
}

// GetAllModules retrieves the module catalog
// @Summary List all modules
// @Description Retrieves every module in the catalog ordered by code
// @Tags modules
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ModuleListResponse} "Modules retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [get]
func (c *ModuleController) GetAllModules(ctx *gin.Context) {
	modules, err := c.moduleService.GetAllModules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ModuleListResponse{Modules: dto.FromModules(modules)}))
}

// DeleteModuleByCode deletes a module
// @Summary Delete a module
// @Description Deletes a module along with its registrations and grades
// @Tags modules
// @Accept json
// @Produce json
// @Param code path string true "Module code" maxLength(10)
// @Success 200 {object} dto.APIResponse "Module deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{code} [delete]
func (c *ModuleController) DeleteModuleByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	if err := c.moduleService.DeleteModuleByCode(ctx, code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Module deleted successfully"}))
}
