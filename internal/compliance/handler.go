package compliance

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"compliance-backend/internal/shared/server/middleware"
	"compliance-backend/internal/shared/server/respond"
)

// Handler exposes read endpoints over analyzer output, plus dev-only seeding.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches compliance routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:id/checks", h.listChecks)
	rg.GET("/documents/:id/issues", h.listIssues)
}

// RegisterDevRoutes attaches seeding endpoints used in local development,
// standing in for the external analyzer.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/checks", h.seedCheck)
}

type checkResponse struct {
	CheckID     string     `json:"checkId"`
	DocumentID  string     `json:"documentId"`
	Framework   string     `json:"framework"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type issueResponse struct {
	IssueID        string `json:"issueId"`
	Framework      string `json:"framework"`
	Title          string `json:"title"`
	Severity       string `json:"severity"`
	Category       string `json:"category,omitempty"`
	Description    string `json:"description,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
	SuggestedText  string `json:"suggestedText,omitempty"`
}

func (h *Handler) listChecks(c *gin.Context) {
	workspaceID := middleware.WorkspaceIDFromContext(c)

	checks, err := h.Repo.GetCompletedChecks(c.Request.Context(), c.Param("id"), workspaceID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list checks", nil)
		return
	}

	resp := make([]checkResponse, 0, len(checks))
	for _, check := range checks {
		resp = append(resp, checkResponse{
			CheckID:     check.ID,
			DocumentID:  check.DocumentID,
			Framework:   check.Framework,
			Status:      check.Status,
			CreatedAt:   check.CreatedAt,
			CompletedAt: check.CompletedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) listIssues(c *gin.Context) {
	workspaceID := middleware.WorkspaceIDFromContext(c)

	checks, err := h.Repo.GetCompletedChecks(c.Request.Context(), c.Param("id"), workspaceID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list issues", nil)
		return
	}

	checkIDs := make([]string, 0, len(checks))
	for _, check := range checks {
		checkIDs = append(checkIDs, check.ID)
	}

	issues, err := h.Repo.GetIssuesForChecks(c.Request.Context(), checkIDs)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list issues", nil)
		return
	}

	joined := JoinIssues(checks, issues)
	resp := make([]issueResponse, 0, len(joined))
	for _, issue := range joined {
		resp = append(resp, issueResponse{
			IssueID:        issue.ID,
			Framework:      issue.Framework,
			Title:          issue.Title,
			Severity:       issue.Severity,
			Category:       issue.Category,
			Description:    issue.Description,
			Recommendation: issue.Recommendation,
			SuggestedText:  issue.SuggestedText,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

type seedIssueRequest struct {
	Title          string `json:"title"`
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	LLMResponse    string `json:"llmResponse"`
}

type seedCheckRequest struct {
	DocumentID string             `json:"documentId"`
	Framework  string             `json:"framework"`
	Issues     []seedIssueRequest `json:"issues"`
}

func (h *Handler) seedCheck(c *gin.Context) {
	workspaceID := middleware.WorkspaceIDFromContext(c)

	var req seedCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.DocumentID = strings.TrimSpace(req.DocumentID)
	req.Framework = strings.TrimSpace(req.Framework)
	if req.DocumentID == "" || req.Framework == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "documentId and framework are required", nil)
		return
	}

	now := time.Now().UTC()
	check := Check{
		ID:          uuid.NewString(),
		DocumentID:  req.DocumentID,
		WorkspaceID: workspaceID,
		Framework:   req.Framework,
		Status:      StatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}
	if err := h.Repo.CreateCheck(c.Request.Context(), check); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create check", nil)
		return
	}

	for _, issue := range req.Issues {
		if strings.TrimSpace(issue.Title) == "" {
			continue
		}
		severity := issue.Severity
		if severity == "" {
			severity = "medium"
		}
		record := Issue{
			ID:             uuid.NewString(),
			CheckID:        check.ID,
			Title:          issue.Title,
			Severity:       severity,
			Category:       issue.Category,
			Description:    issue.Description,
			Recommendation: issue.Recommendation,
			LLMResponse:    issue.LLMResponse,
			CreatedAt:      now,
		}
		if err := h.Repo.CreateIssue(c.Request.Context(), record); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create issue", nil)
			return
		}
	}

	respond.JSON(c, http.StatusCreated, checkResponse{
		CheckID:     check.ID,
		DocumentID:  check.DocumentID,
		Framework:   check.Framework,
		Status:      check.Status,
		CreatedAt:   check.CreatedAt,
		CompletedAt: check.CompletedAt,
	})
}
