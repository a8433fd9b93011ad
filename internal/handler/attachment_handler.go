package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/service"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

// UploadAttachment accepts a multipart image upload. The payload is
// stored as-is and served back byte for byte.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UploadAttachmentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid upload metadata")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file form field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to open uploaded file")
		return
	}
	defer file.Close()

	// Read one byte past the cap so oversized uploads are detected
	// without buffering arbitrarily large bodies
	data, err := io.ReadAll(io.LimitReader(file, service.MaxAttachmentSize+1))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read uploaded file")
		return
	}

	attachment, err := h.attachmentService.Upload(c.Request.Context(), userID, &req, fileHeader.Filename, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// DownloadAttachment streams the stored bytes with the stored content type
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}

	attachment, err := h.attachmentService.Get(c.Request.Context(), attachmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+attachment.FileName+`"`)
	c.Data(http.StatusOK, attachment.ContentType, attachment.Data)
}

// ListAttachments lists attachment metadata for an entity
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	entityType := domain.EntityType(c.Query("entityType"))
	switch entityType {
	case domain.EntityTypeProject, domain.EntityTypeWorkItem, domain.EntityTypeWorkItemType:
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "entityType must be one of: PROJECT, WORK_ITEM, WORK_ITEM_TYPE")
		return
	}

	entityID, err := uuid.Parse(c.Query("entityId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entityId")
		return
	}

	attachments, err := h.attachmentService.ListByEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attachments)
}

// DeleteAttachment removes an attachment
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), attachmentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Attachment deleted successfully"})
}
