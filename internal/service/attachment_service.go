package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/domain"
	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/response"
)

// MaxAttachmentSize is the hard upload cap in bytes
const MaxAttachmentSize = 2 * 1024 * 1024

// Accepted image extensions and the content types they may sniff as
var (
	allowedExtensions = map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
	}
	allowedContentTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/gif":  true,
	}
)

// AttachmentService defines the interface for attachment business logic
type AttachmentService interface {
	Upload(ctx context.Context, userID uuid.UUID, req *dto.UploadAttachmentRequest, fileName string, data []byte) (*dto.AttachmentResponse, error)
	Get(ctx context.Context, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*dto.AttachmentResponse, error)
	Delete(ctx context.Context, attachmentID uuid.UUID) error
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(attachmentRepo repository.AttachmentRepository, logger *zap.Logger) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

// Upload validates and stores an image attachment. The stored bytes are
// returned verbatim on retrieval. Size is checked before type so the two
// failure modes stay distinguishable.
func (s *attachmentServiceImpl) Upload(ctx context.Context, userID uuid.UUID, req *dto.UploadAttachmentRequest, fileName string, data []byte) (*dto.AttachmentResponse, error) {
	if len(data) == 0 {
		return nil, response.NewValidationError("Uploaded file is empty", "")
	}
	if len(data) > MaxAttachmentSize {
		return nil, response.NewAppError(response.ErrCodeFileTooLarge,
			fmt.Sprintf("File exceeds the maximum size of %d bytes", MaxAttachmentSize),
			fmt.Sprintf("received %d bytes", len(data)))
	}

	contentType, err := detectImageType(fileName, data)
	if err != nil {
		return nil, err
	}

	attachment := &domain.Attachment{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
		FileName:    fileName,
		ContentType: contentType,
		FileSize:    int64(len(data)),
		Data:        data,
		UploadedBy:  userID,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store attachment", err.Error())
	}

	s.logger.Info("Attachment uploaded",
		zap.String("attachment_id", attachment.ID.String()),
		zap.String("file_name", fileName),
		zap.Int64("file_size", attachment.FileSize),
	)
	return toAttachmentResponse(attachment), nil
}

// Get retrieves an attachment including its raw bytes
func (s *attachmentServiceImpl) Get(ctx context.Context, attachmentID uuid.UUID) (*domain.Attachment, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachment", err.Error())
	}
	return attachment, nil
}

// ListByEntity lists attachment metadata for an entity
func (s *attachmentServiceImpl) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*dto.AttachmentResponse, error) {
	attachments, err := s.attachmentRepo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachments", err.Error())
	}
	responses := make([]*dto.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = toAttachmentResponse(a)
	}
	return responses, nil
}

// Delete removes an attachment
func (s *attachmentServiceImpl) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	if _, err := s.Get(ctx, attachmentID); err != nil {
		return err
	}
	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete attachment", err.Error())
	}
	return nil
}

// detectImageType checks both the file extension and the sniffed content
// of the payload. Either failing rejects the upload; the sniffed type is
// what gets stored and served back.
func detectImageType(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return "", response.NewAppError(response.ErrCodeUnsupportedFileType,
			"Only png, jpg, jpeg and gif files are accepted",
			fmt.Sprintf("extension %q is not allowed", ext))
	}
	contentType := http.DetectContentType(data)
	if !allowedContentTypes[contentType] {
		return "", response.NewAppError(response.ErrCodeUnsupportedFileType,
			"Only png, jpg, jpeg and gif files are accepted",
			fmt.Sprintf("detected content type %q is not allowed", contentType))
	}
	return contentType, nil
}
