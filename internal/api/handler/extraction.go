package handler

import (
	"net/http"

	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/usecases/extracting"
	"github.com/vfg2006/mymoney-api/pkg/apiErrors"
	"github.com/vfg2006/mymoney-api/pkg/log"
)

// ExtractCustomer executa a extração de perfil de cliente sob demanda para
// uma aba. Não localizar um perfil na aba resulta em 404.
func ExtractCustomer(sheetRepo repository.SheetRepository, extractor extracting.CustomerExtractor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de aba inválido", nil)
			return
		}

		sheet, err := sheetRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("extraction: erro ao buscar aba")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar aba", nil)
			return
		}

		if sheet == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Aba não encontrada", nil)
			return
		}

		customer, _, err := extractor.ExtractFromSheet(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("extraction: erro ao extrair perfil de cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao extrair perfil de cliente", nil)
			return
		}

		if customer == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhum perfil de cliente encontrado na aba", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sheet_id":    id,
			"customer_id": customer.ID,
		}).Info("extraction: perfil de cliente extraído")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logger.WithError(err).Error("extraction: erro ao codificar resposta")
		}
	})
}

// ExtractCashFlows executa a extração do fluxo de caixa sob demanda para uma
// aba. A ausência da seção resulta em lista vazia com status 200.
func ExtractCashFlows(sheetRepo repository.SheetRepository, extractor extracting.CashFlowExtractor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id, ok := pathID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de aba inválido", nil)
			return
		}

		sheet, err := sheetRepo.GetByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("extraction: erro ao buscar aba")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar aba", nil)
			return
		}

		if sheet == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Aba não encontrada", nil)
			return
		}

		entries, _, err := extractor.ExtractFromSheet(r.Context(), id)
		if err != nil {
			logger.WithError(err).Error("extraction: erro ao extrair fluxo de caixa")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao extrair fluxo de caixa", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sheet_id": id,
			"entries":  len(entries),
		}).Info("extraction: fluxo de caixa extraído")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("extraction: erro ao codificar resposta")
		}
	})
}
