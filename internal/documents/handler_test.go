package documents

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("workspaceId", "ws-1")
		c.Next()
	})
	NewHandler(&Service{Repo: repo}).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	hdr["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadIngestsAndExtractsText(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(repo)

	body, contentType := multipartUpload(t, "file", "policy.md", "text/markdown", []byte("# Privacy Policy\n\nWe collect data."))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp DocumentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.DocumentID == "" || resp.Filename != "policy.md" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.ProcessingStatus != StatusCompleted {
		t.Errorf("processing status = %q, want %q", resp.ProcessingStatus, StatusCompleted)
	}
	if !resp.HasExtractedText {
		t.Errorf("hasExtractedText should be true")
	}

	doc, err := repo.GetByID(req.Context(), resp.DocumentID, "ws-1")
	if err != nil {
		t.Fatalf("stored document: %v", err)
	}
	if doc.ExtractedText == "" {
		t.Errorf("extracted text not stored")
	}
	if doc.UploadedBy != "user-1" {
		t.Errorf("uploaded_by = %q", doc.UploadedBy)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestGetDocumentScopedToWorkspace(t *testing.T) {
	repo := NewMemoryRepo()
	seed := Document{ID: "doc-other", WorkspaceID: "ws-2", Filename: "a.txt", ProcessingStatus: StatusCompleted}
	if err := repo.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-other", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-workspace read: status = %d", w.Code)
	}
}

func TestListDocumentsReturnsEmptySlice(t *testing.T) {
	router := newTestRouter(NewMemoryRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}
