package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/pkg/apiErrors"
	"github.com/vfg2006/mymoney-api/pkg/log"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// pathID extrai o parâmetro :id numérico da rota.
func pathID(r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt lê um parâmetro numérico da query string com valor padrão.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func ListUploads(uploadRepo repository.UploadRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		skip := queryInt(r, "skip", 0)
		limit := queryInt(r, "limit", defaultPageLimit)
		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		uploads, err := uploadRepo.List(r.Context(), skip, limit)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao listar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar uploads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(uploads); err != nil {
			logger.WithError(err).Error("uploads: erro ao codificar resposta")
		}
	})
}

func GetUpload(uploadRepo repository.UploadRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de upload inválido", nil)
			return
		}

		upload, err := uploadRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao buscar upload")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar upload", nil)
			return
		}

		if upload == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Upload não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(upload); err != nil {
			logger.WithError(err).Error("uploads: erro ao codificar resposta")
		}
	})
}

func ListUploadSheets(uploadRepo repository.UploadRepository, sheetRepo repository.SheetRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de upload inválido", nil)
			return
		}

		upload, err := uploadRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao buscar upload")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar upload", nil)
			return
		}

		if upload == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Upload não encontrado", nil)
			return
		}

		sheets, err := sheetRepo.ListByUpload(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao listar abas do upload")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar abas do upload", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sheets); err != nil {
			logger.WithError(err).Error("uploads: erro ao codificar resposta")
		}
	})
}

// DeleteUpload remove o upload e, por cascata, as abas, linhas e entidades
// extraídas derivadas dele.
func DeleteUpload(uploadRepo repository.UploadRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de upload inválido", nil)
			return
		}

		upload, err := uploadRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("uploads: erro ao buscar upload")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar upload", nil)
			return
		}

		if upload == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Upload não encontrado", nil)
			return
		}

		if err := uploadRepo.Delete(r.Context(), id); err != nil {
			logger.WithError(err).Error("uploads: erro ao excluir upload")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir upload", nil)
			return
		}

		logger.WithField("upload_id", id).Info("uploads: upload excluído")
		w.WriteHeader(http.StatusNoContent)
	})
}
