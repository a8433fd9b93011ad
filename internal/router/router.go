package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"project-tracker-api/internal/config"
	"project-tracker-api/internal/handler"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/middleware"
)

// Handlers bundles the HTTP handlers wired into the router
type Handlers struct {
	Health     *handler.HealthHandler
	Project    *handler.ProjectHandler
	Template   *handler.TemplateHandler
	WorkItem   *handler.WorkItemHandler
	Attachment *handler.AttachmentHandler
}

// New builds the gin engine with all middleware and routes
func New(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Unauthenticated operational endpoints
	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.Server.BasePath)
	api.Use(middleware.Auth(cfg.JWT.Secret))
	{
		// Template catalog
		api.GET("/templates", h.Template.ListTemplates)
		api.GET("/templates/:templateId", h.Template.GetTemplate)

		// Projects
		api.POST("/projects", h.Project.CreateProject)
		api.GET("/projects", h.Project.GetMyProjects)
		api.GET("/projects/:projectId", h.Project.GetProject)
		api.POST("/projects/:projectId/apply-template", h.Template.ApplyTemplate)
		api.GET("/projects/:projectId/types", h.Template.GetProjectTypes)
		api.GET("/projects/:projectId/work-items", h.WorkItem.ListProjectWorkItems)

		// Work items
		api.POST("/work-items", h.WorkItem.CreateWorkItem)
		api.GET("/work-items/:workItemId", h.WorkItem.GetWorkItem)
		api.GET("/work-items/:workItemId/display", h.WorkItem.GetWorkItemDisplay)
		api.PUT("/work-items/:workItemId", h.WorkItem.UpdateWorkItem)
		api.DELETE("/work-items/:workItemId", h.WorkItem.DeleteWorkItem)

		// Attachments
		api.POST("/attachments", h.Attachment.UploadAttachment)
		api.GET("/attachments", h.Attachment.ListAttachments)
		api.GET("/attachments/:attachmentId", h.Attachment.DownloadAttachment)
		api.DELETE("/attachments/:attachmentId", h.Attachment.DeleteAttachment)
	}

	return r
}
