package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker-api/internal/dto"
	"project-tracker-api/internal/response"
	"project-tracker-api/internal/schema"
)

// MockTemplateService is a mock implementation of TemplateService
type MockTemplateService struct {
	ListTemplatesFunc   func(ctx context.Context) []*dto.TemplateSummaryResponse
	GetTemplateFunc     func(ctx context.Context, templateID string) (*dto.TemplateResponse, error)
	ApplyTemplateFunc   func(ctx context.Context, projectID uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error)
	GetProjectTypesFunc func(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemTypeResponse, error)
}

func (m *MockTemplateService) ListTemplates(ctx context.Context) []*dto.TemplateSummaryResponse {
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc(ctx)
	}
	return nil
}

func (m *MockTemplateService) GetTemplate(ctx context.Context, templateID string) (*dto.TemplateResponse, error) {
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *MockTemplateService) ApplyTemplate(ctx context.Context, projectID uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
	if m.ApplyTemplateFunc != nil {
		return m.ApplyTemplateFunc(ctx, projectID, defs)
	}
	return nil, nil
}

func (m *MockTemplateService) GetProjectTypes(ctx context.Context, projectID uuid.UUID) ([]*dto.WorkItemTypeResponse, error) {
	if m.GetProjectTypesFunc != nil {
		return m.GetProjectTypesFunc(ctx, projectID)
	}
	return nil, nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTemplateHandler_ApplyTemplate(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name           string
		projectID      string
		requestBody    interface{}
		mockService    func(*MockTemplateService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:        "applies a catalog template",
			projectID:   projectID.String(),
			requestBody: dto.ApplyTemplateRequest{TemplateID: "scrum"},
			mockService: func(m *MockTemplateService) {
				m.ApplyTemplateFunc = func(ctx context.Context, pid uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
					resp := make([]*dto.WorkItemTypeResponse, 0, len(defs))
					for _, def := range defs {
						resp = append(resp, &dto.WorkItemTypeResponse{
							TypeID:    uuid.New(),
							ProjectID: pid,
							Name:      def.Name,
						})
					}
					return resp, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown catalog template",
			projectID:      projectID.String(),
			requestBody:    dto.ApplyTemplateRequest{TemplateID: "waterfall"},
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusNotFound,
			expectedCode:   response.ErrCodeNotFound,
		},
		{
			name:           "neither templateId nor workItemTypes",
			projectID:      projectID.String(),
			requestBody:    dto.ApplyTemplateRequest{},
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name:        "duplicate type name",
			projectID:   projectID.String(),
			requestBody: dto.ApplyTemplateRequest{TemplateID: "basic"},
			mockService: func(m *MockTemplateService) {
				m.ApplyTemplateFunc = func(ctx context.Context, pid uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
					return nil, response.NewAppError(
						response.ErrCodeDuplicateTypeName,
						"Type names must be unique within the project",
						[]string{"task"},
					)
				}
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   response.ErrCodeDuplicateTypeName,
		},
		{
			name:        "unresolved child reference",
			projectID:   projectID.String(),
			requestBody: dto.ApplyTemplateRequest{TemplateID: "basic"},
			mockService: func(m *MockTemplateService) {
				m.ApplyTemplateFunc = func(ctx context.Context, pid uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
					return nil, response.NewAppError(
						response.ErrCodeUnresolvedChildReference,
						"Child type references must resolve within the batch",
						[]string{"ghost"},
					)
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeUnresolvedChildReference,
		},
		{
			name:           "invalid project id",
			projectID:      "not-a-uuid",
			requestBody:    dto.ApplyTemplateRequest{TemplateID: "basic"},
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
		{
			name:           "malformed body",
			projectID:      projectID.String(),
			requestBody:    "not json",
			mockService:    func(m *MockTemplateService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTemplateService{}
			tt.mockService(mockService)
			h := NewTemplateHandler(mockService)

			router := setupTestRouter()
			router.POST("/projects/:projectId/apply-template", h.ApplyTemplate)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/projects/"+tt.projectID+"/apply-template", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				resp := decodeError(t, w)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
			}
		})
	}
}

func TestTemplateHandler_ApplyTemplateResolvesCatalogDefinitions(t *testing.T) {
	projectID := uuid.New()
	var gotDefs []schema.TypeDefinition
	mockService := &MockTemplateService{
		ApplyTemplateFunc: func(ctx context.Context, pid uuid.UUID, defs []schema.TypeDefinition) ([]*dto.WorkItemTypeResponse, error) {
			gotDefs = defs
			return []*dto.WorkItemTypeResponse{}, nil
		},
	}
	h := NewTemplateHandler(mockService)

	router := setupTestRouter()
	router.POST("/projects/:projectId/apply-template", h.ApplyTemplate)

	body, _ := json.Marshal(dto.ApplyTemplateRequest{TemplateID: "scrum"})
	req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID.String()+"/apply-template", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, gotDefs)
	names := make([]string, 0, len(gotDefs))
	for _, def := range gotDefs {
		names = append(names, def.Name)
	}
	assert.Contains(t, names, "epic")
	assert.Contains(t, names, "story")
}

func TestTemplateHandler_GetTemplate(t *testing.T) {
	mockService := &MockTemplateService{
		GetTemplateFunc: func(ctx context.Context, templateID string) (*dto.TemplateResponse, error) {
			if templateID != "kanban" {
				return nil, response.NewNotFoundError("Template not found", templateID)
			}
			return &dto.TemplateResponse{TemplateID: "kanban", Name: "Kanban"}, nil
		},
	}
	h := NewTemplateHandler(mockService)

	router := setupTestRouter()
	router.GET("/templates/:templateId", h.GetTemplate)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/templates/kanban", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/templates/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
