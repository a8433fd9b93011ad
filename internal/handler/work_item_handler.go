package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type WorkItemHandler struct {
	workItemService service.WorkItemService
}

func NewWorkItemHandler(workItemService service.WorkItemService) *WorkItemHandler {
	return &WorkItemHandler{
		workItemService: workItemService,
	}
}

// CreateWorkItem creates a work item after validating it against its type
func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.workItemService.CreateWorkItem(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, item)
}

// GetWorkItem retrieves a work item with its raw field values
func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	workItemID, ok := parseUUIDParam(c, "workItemId")
	if !ok {
		return
	}

	item, err := h.workItemService.GetWorkItem(c.Request.Context(), workItemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// GetWorkItemDisplay retrieves the display-ready projection of an item
func (h *WorkItemHandler) GetWorkItemDisplay(c *gin.Context) {
	workItemID, ok := parseUUIDParam(c, "workItemId")
	if !ok {
		return
	}

	display, err := h.workItemService.GetWorkItemDisplay(c.Request.Context(), workItemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, display)
}

// ListProjectWorkItems lists a project's work items
func (h *WorkItemHandler) ListProjectWorkItems(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	items, err := h.workItemService.ListProjectWorkItems(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, items)
}

// UpdateWorkItem revalidates and updates a work item
func (h *WorkItemHandler) UpdateWorkItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workItemID, ok := parseUUIDParam(c, "workItemId")
	if !ok {
		return
	}

	var req dto.UpdateWorkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	item, err := h.workItemService.UpdateWorkItem(c.Request.Context(), userID, workItemID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, item)
}

// DeleteWorkItem soft-deletes a work item
func (h *WorkItemHandler) DeleteWorkItem(c *gin.Context) {
	workItemID, ok := parseUUIDParam(c, "workItemId")
	if !ok {
		return
	}

	if err := h.workItemService.DeleteWorkItem(c.Request.Context(), workItemID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Work item deleted successfully"})
}
