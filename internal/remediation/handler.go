package remediation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/documents"
	"compliance-backend/internal/shared/server/middleware"
	"compliance-backend/internal/shared/server/respond"
)

// Handler wires the correction endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches correction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/correct", h.correct)
	rg.GET("/documents/:id/correction", h.getCorrection)
}

func (h *Handler) correct(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	workspaceID := middleware.WorkspaceIDFromContext(c)
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	result := h.Svc.GenerateCorrection(c.Request.Context(), documentID, workspaceID, userID)
	if !result.Success {
		code := Classify(result.Error)
		respond.Error(c, HTTPStatus(code), string(code), result.Error, nil)
		return
	}

	respond.OK(c, result)
}

func (h *Handler) getCorrection(c *gin.Context) {
	workspaceID := middleware.WorkspaceIDFromContext(c)

	view, err := h.Svc.GetCorrection(c.Request.Context(), c.Param("id"), workspaceID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no correction found for document", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch correction", nil)
		}
		return
	}

	respond.OK(c, view)
}
