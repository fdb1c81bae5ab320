package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
	"github.com/tracklane/project-tracker-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	log zerolog.Logger
}

func New(svc *service.ProjectService, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	var state *domain.State
	if req.State != nil {
		st, err := domain.ParseState(*req.State)
		if err != nil {
			h.writeError(c, err)
			return
		}
		state = &st
	}

	p, err := h.svc.Create(c.Request.Context(), req.Name, req.Description, state)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(p))
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(p))
}

func (h *Handler) list(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", strconv.Itoa(repository.DefaultSkip)))
	if err != nil {
		writeBindError(c, err)
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultLimit)))
	if err != nil {
		writeBindError(c, err)
		return
	}

	var state *domain.State
	if raw, ok := c.GetQuery("state"); ok {
		st, err := domain.ParseState(raw)
		if err != nil {
			h.writeError(c, err)
			return
		}
		state = &st
	}

	page, err := h.svc.List(c.Request.Context(), skip, limit, state)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(page))
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	patch := service.UpdatePatch{Name: req.Name, Description: req.Description}
	if req.State != nil {
		st, err := domain.ParseState(*req.State)
		if err != nil {
			h.writeError(c, err)
			return
		}
		patch.State = &st
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("project_id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(p))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("project_id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
