package domain

import "time"

// Upload representa o histórico de um arquivo enviado.
type Upload struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	Filename   string    `json:"filename"`
	SheetCount int       `json:"sheet_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadResponse é o retorno do endpoint de upload.
type UploadResponse struct {
	UploadID   int64  `json:"upload_id"`
	Code       string `json:"code"`
	Filename   string `json:"filename"`
	SheetCount int    `json:"sheet_count"`
	Message    string `json:"message"`
}
