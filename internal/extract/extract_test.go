package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExtractTextFromBytes_PlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("  Policy v1\n"), "text/plain", "policy.txt")
	if err != nil {
		t.Fatalf("extract plain text: %v", err)
	}
	if text != "Policy v1" {
		t.Fatalf("expected trimmed text, got %q", text)
	}
}

func TestExtractTextFromBytes_MarkdownByExtension(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("# Title\n\nbody"), "application/octet-stream", "policy.md")
	if err != nil {
		t.Fatalf("extract markdown: %v", err)
	}
	if !strings.HasPrefix(text, "# Title") {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractTextFromBytes_DocxFromZip(t *testing.T) {
	data := buildDocx(t, "<w:document><w:body><w:p><w:r><w:t>Retention policy</w:t></w:r></w:p></w:body></w:document>")

	text, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "policy.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Retention policy") {
		t.Fatalf("expected docx text, got %q", text)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_InvalidUTF8Rejected(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0xff, 0xfe, 0x00}, "text/plain", "binary.txt")
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 text payload")
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create docx entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write docx entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return buf.Bytes()
}
