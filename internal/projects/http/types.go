package http

import (
	"time"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/service"
)

type createReq struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	State       *string `json:"state"`
}

type updateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	State       *string `json:"state"`
}

// ProjectResponse is the wire shape of a project, distinct from the domain
// entity so the two can evolve independently.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListResponse struct {
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
	Items []ProjectResponse `json:"items"`
}

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Detail    string         `json:"detail"`
	ErrorData map[string]any `json:"error_data,omitempty"`
}

// ValidationErrorResponse is the body of a 422.
type ValidationErrorResponse struct {
	Detail string            `json:"detail"`
	Errors []ValidationIssue `json:"errors"`
}

type ValidationIssue struct {
	Loc  string `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

func toResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		State:       string(p.State),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toListResponse(page *service.Page) ListResponse {
	items := make([]ProjectResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toResponse(&page.Items[i]))
	}
	return ListResponse{Total: page.Total, Skip: page.Skip, Limit: page.Limit, Items: items}
}
