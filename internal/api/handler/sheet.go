package handler

import (
	"net/http"

	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"github.com/vfg2006/mymoney-api/pkg/apiErrors"
	"github.com/vfg2006/mymoney-api/pkg/log"
)

// GetSheet devolve a aba com suas linhas persistidas, paginadas por skip/limit.
func GetSheet(sheetRepo repository.SheetRepository, recordRepo repository.RecordRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de aba inválido", nil)
			return
		}

		sheet, err := sheetRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("sheets: erro ao buscar aba")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar aba", nil)
			return
		}

		if sheet == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Aba não encontrada", nil)
			return
		}

		skip := queryInt(r, "skip", 0)
		limit := queryInt(r, "limit", defaultPageLimit)
		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		records, err := recordRepo.ListBySheet(r.Context(), id, skip, limit)
		if err != nil {
			logger.WithError(err).Error("sheets: erro ao listar linhas da aba")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar linhas da aba", nil)
			return
		}

		response := domain.SheetWithRecords{
			Sheet:   *sheet,
			Records: records,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("sheets: erro ao codificar resposta")
		}
	})
}
