package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/config"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"github.com/vfg2006/mymoney-api/internal/usecases/extracting"
)

// ExtractionSyncConfig representa a configuração do agendador de extração
type ExtractionSyncConfig struct {
	IntervalSeconds int
	SyncEnabled     bool
}

// ExtractionSyncService gerencia o agendamento e execução da extração de
// perfis de cliente e fluxo de caixa a partir das abas armazenadas. Cada
// extração roda como um job próprio no mesmo agendador.
type ExtractionSyncService struct {
	scheduler         *gocron.Scheduler
	config            ExtractionSyncConfig
	sheetRepo         repository.SheetRepository
	customerExtractor extracting.CustomerExtractor
	cashFlowExtractor extracting.CashFlowExtractor

	syncMutex           sync.Mutex
	started             bool
	customerSyncRunning bool
	cashFlowSyncRunning bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewExtractionSyncService cria uma nova instância do serviço de extração periódica
func NewExtractionSyncService(
	sheetRepo repository.SheetRepository,
	customerExtractor extracting.CustomerExtractor,
	cashFlowExtractor extracting.CashFlowExtractor,
	appConfig *config.Config,
) *ExtractionSyncService {
	syncConfig := ExtractionSyncConfig{
		IntervalSeconds: appConfig.ExtractionSync.IntervalSeconds,
		SyncEnabled:     appConfig.ExtractionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": syncConfig.IntervalSeconds,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de extração carregada")

	return &ExtractionSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		sheetRepo:         sheetRepo,
		customerExtractor: customerExtractor,
		cashFlowExtractor: cashFlowExtractor,
	}
}

// Start inicia o agendador. Chamadas repetidas são ignoradas com aviso.
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Extração periódica desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	if s.started {
		s.syncMutex.Unlock()
		logrus.Warn("Agendador de extração já iniciado, ignorando")
		return nil
	}
	s.started = true
	s.syncMutex.Unlock()

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).
		Info("Iniciando agendador de extração")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.syncAllCustomers(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração de perfis de cliente: %w", err)
	}

	_, err = s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.syncAllCashFlows(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração de fluxo de caixa: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de extração")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCustomers percorre todas as abas armazenadas e executa a extração
// de perfil de cliente em cada uma. Falhas em uma aba não interrompem as
// demais.
func (s *ExtractionSyncService) syncAllCustomers(ctx context.Context) {
	s.syncMutex.Lock()
	if s.customerSyncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração de perfis de cliente já em andamento, ignorando")
		return
	}
	s.customerSyncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.customerSyncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	sheets, err := s.listSheets(ctx, "perfis de cliente")
	if len(sheets) == 0 || err != nil {
		return
	}

	var created, updated, failures int

	for _, sheet := range sheets {
		customer, wasCreated, err := s.customerExtractor.ExtractFromSheet(ctx, sheet.ID)
		if err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"sheet_id":   sheet.ID,
				"sheet_name": sheet.Name,
				"error":      err.Error(),
			}).Error("Erro ao extrair perfil de cliente da aba")
			continue
		}

		if customer == nil {
			continue
		}

		if wasCreated {
			created++
		} else {
			updated++
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"sheets":   len(sheets),
		"created":  created,
		"updated":  updated,
		"failures": failures,
	}).Info("Extração de perfis de cliente concluída")
}

// syncAllCashFlows percorre todas as abas armazenadas e executa a extração
// de fluxo de caixa em cada uma.
func (s *ExtractionSyncService) syncAllCashFlows(ctx context.Context) {
	s.syncMutex.Lock()
	if s.cashFlowSyncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração de fluxo de caixa já em andamento, ignorando")
		return
	}
	s.cashFlowSyncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.cashFlowSyncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	sheets, err := s.listSheets(ctx, "fluxo de caixa")
	if len(sheets) == 0 || err != nil {
		return
	}

	var created, updated, failures int

	for _, sheet := range sheets {
		entries, createdCount, err := s.cashFlowExtractor.ExtractFromSheet(ctx, sheet.ID)
		if err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"sheet_id":   sheet.ID,
				"sheet_name": sheet.Name,
				"error":      err.Error(),
			}).Error("Erro ao extrair fluxo de caixa da aba")
			continue
		}

		created += createdCount
		updated += len(entries) - createdCount
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"sheets":   len(sheets),
		"created":  created,
		"updated":  updated,
		"failures": failures,
	}).Info("Extração de fluxo de caixa concluída")
}

func (s *ExtractionSyncService) listSheets(ctx context.Context, jobName string) ([]domain.Sheet, error) {
	sheets, err := s.sheetRepo.ListAll(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job":   jobName,
			"error": err.Error(),
		}).Error("Erro ao buscar lista de abas para extração")
		return nil, err
	}

	if len(sheets) == 0 {
		logrus.WithField("job", jobName).Debug("Nenhuma aba encontrada para extração")
	}

	return sheets, nil
}

// TriggerManualSync inicia manualmente uma rodada completa de extração
func (s *ExtractionSyncService) TriggerManualSync() {
	logrus.Info("Iniciando extração manual")
	go s.syncAllCustomers(context.Background())
	go s.syncAllCashFlows(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_seconds":  s.config.IntervalSeconds,
		"customer_sync_running":  s.customerSyncRunning,
		"cash_flow_sync_running": s.cashFlowSyncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
