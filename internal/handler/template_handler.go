package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/schema"
	"project-tracker-api/internal/service"
	"project-tracker-api/internal/template"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// ListTemplates lists the built-in template catalog
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates := h.templateService.ListTemplates(c.Request.Context())
	response.SendSuccess(c, http.StatusOK, templates)
}

// GetTemplate retrieves one catalog template with its type definitions
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tmpl, err := h.templateService.GetTemplate(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tmpl)
}

// ApplyTemplate applies a catalog template or an inline set of type
// definitions to a project. The whole batch persists or none of it does.
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	defs, err := resolveDefinitions(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	types, err := h.templateService.ApplyTemplate(c.Request.Context(), projectID, defs)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, types)
}

// GetProjectTypes lists a project's work item types
func (h *TemplateHandler) GetProjectTypes(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	types, err := h.templateService.GetProjectTypes(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, types)
}

// resolveDefinitions picks the type definitions to apply: a catalog
// template id takes precedence over an inline workItemTypes array
func resolveDefinitions(req *dto.ApplyTemplateRequest) ([]schema.TypeDefinition, error) {
	if req.TemplateID != "" {
		tmpl, ok := template.BuiltInByID(req.TemplateID)
		if !ok {
			return nil, response.NewNotFoundError("Template not found", req.TemplateID)
		}
		return tmpl.WorkItemTypes, nil
	}
	if len(req.WorkItemTypes) == 0 {
		return nil, response.NewValidationError("Either templateId or workItemTypes is required", "")
	}
	return req.WorkItemTypes, nil
}
