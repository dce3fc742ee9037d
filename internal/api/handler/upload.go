package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/mymoney-api/internal/usecases/ingesting"
	"github.com/vfg2006/mymoney-api/internal/usecases/uploading"
	"github.com/vfg2006/mymoney-api/pkg/apiErrors"
	"github.com/vfg2006/mymoney-api/pkg/log"
)

// maxUploadBytes limita o tamanho do corpo multipart aceito no upload.
const maxUploadBytes = 32 << 20

// UploadFile recebe um arquivo de extrato via multipart e dispara a ingestão.
func UploadFile(uploader uploading.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.WithError(err).Warn("upload: corpo multipart inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou muito grande", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("upload: campo de arquivo ausente")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("upload: erro ao ler o arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"size":     len(content),
		}).Info("upload: processando arquivo")

		response, err := uploader.Ingest(r.Context(), content, header.Filename)
		if err != nil {
			switch {
			case errors.Is(err, ingesting.ErrUnsupportedFormat):
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedFormat, "Formato de arquivo não suportado", nil)
			case errors.Is(err, uploading.ErrEmptyDocument):
				apiErrors.WriteError(w, apiErrors.ErrEmptyDocument, "O arquivo não contém abas com dados", nil)
			default:
				logger.WithError(err).Error("upload: erro ao processar arquivo")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar o arquivo", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"upload_id": response.UploadID,
			"sheets":    response.SheetCount,
		}).Info("upload: arquivo processado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("upload: erro ao codificar resposta")
		}
	})
}
