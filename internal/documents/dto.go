package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID       string     `json:"documentId"`
	Filename         string     `json:"filename"`
	ContentType      string     `json:"contentType,omitempty"`
	SizeBytes        int64      `json:"sizeBytes"`
	ProcessingStatus string     `json:"processingStatus"`
	HasExtractedText bool       `json:"hasExtractedText"`
	CorrectedAt      *time.Time `json:"correctedAt,omitempty"`
	CorrectionsCount int        `json:"correctionsCount"`
	UploadedAt       time.Time  `json:"uploadedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:       doc.ID,
		Filename:         doc.Filename,
		ContentType:      doc.ContentType,
		SizeBytes:        doc.SizeBytes,
		ProcessingStatus: doc.ProcessingStatus,
		HasExtractedText: doc.ExtractedText != "",
		CorrectedAt:      doc.CorrectedAt,
		CorrectionsCount: doc.CorrectionsCount,
		UploadedAt:       doc.CreatedAt,
	}
}
