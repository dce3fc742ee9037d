package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mymoney-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mymoney-api/internal/domain"
	extractingmocks "github.com/vfg2006/mymoney-api/internal/usecases/extracting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(
	sheetRepo *mocks.MockSheetRepository,
	customerExtractor *extractingmocks.MockCustomerExtractor,
	cashFlowExtractor *extractingmocks.MockCashFlowExtractor,
) *ExtractionSyncService {
	return &ExtractionSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		config:            ExtractionSyncConfig{IntervalSeconds: 30, SyncEnabled: true},
		sheetRepo:         sheetRepo,
		customerExtractor: customerExtractor,
		cashFlowExtractor: cashFlowExtractor,
	}
}

func TestExtractionSyncService_syncAllCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockCustomer := extractingmocks.NewMockCustomerExtractor(ctrl)
	mockCashFlow := extractingmocks.NewMockCashFlowExtractor(ctrl)

	service := newTestService(mockSheetRepo, mockCustomer, mockCashFlow)

	sheets := []domain.Sheet{
		{ID: 1, Name: "고객A"},
		{ID: 2, Name: "고객B"},
		{ID: 3, Name: "고객C"},
	}

	mockSheetRepo.EXPECT().ListAll(gomock.Any()).Return(sheets, nil)

	// Aba 1: perfil novo
	mockCustomer.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(1)).
		Return(&domain.Customer{ID: 10, Name: "홍길동"}, true, nil)

	// Aba 2: falha, não deve interromper a aba 3
	mockCustomer.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(2)).
		Return(nil, false, errors.New("linha corrompida"))

	// Aba 3: sem perfil na aba
	mockCustomer.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(3)).
		Return(nil, false, nil)

	service.syncAllCustomers(context.Background())

	assert.False(t, service.customerSyncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestExtractionSyncService_syncAllCashFlows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockCustomer := extractingmocks.NewMockCustomerExtractor(ctrl)
	mockCashFlow := extractingmocks.NewMockCashFlowExtractor(ctrl)

	service := newTestService(mockSheetRepo, mockCustomer, mockCashFlow)

	sheets := []domain.Sheet{
		{ID: 1, Name: "고객A"},
		{ID: 2, Name: "고객B"},
		{ID: 3, Name: "고객C"},
	}

	mockSheetRepo.EXPECT().ListAll(gomock.Any()).Return(sheets, nil)

	// Aba 1: duas entradas, uma nova e uma atualizada
	mockCashFlow.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(1)).
		Return([]domain.CashFlowEntry{{ID: 1}, {ID: 2}}, 1, nil)

	// Aba 2: falha, não deve interromper a aba 3
	mockCashFlow.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(2)).
		Return(nil, 0, errors.New("linha corrompida"))

	// Aba 3: sem seção de fluxo de caixa
	mockCashFlow.EXPECT().
		ExtractFromSheet(gomock.Any(), int64(3)).
		Return([]domain.CashFlowEntry{}, 0, nil)

	service.syncAllCashFlows(context.Background())

	assert.False(t, service.cashFlowSyncRunning)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestExtractionSyncService_syncAllCustomers_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockCustomer := extractingmocks.NewMockCustomerExtractor(ctrl)
	mockCashFlow := extractingmocks.NewMockCashFlowExtractor(ctrl)

	service := newTestService(mockSheetRepo, mockCustomer, mockCashFlow)

	mockSheetRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("banco indisponível"))

	// Nenhum extrator deve ser chamado quando a listagem falha
	service.syncAllCustomers(context.Background())

	assert.False(t, service.customerSyncRunning)
}

func TestExtractionSyncService_syncAllCustomers_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockCustomer := extractingmocks.NewMockCustomerExtractor(ctrl)
	mockCashFlow := extractingmocks.NewMockCashFlowExtractor(ctrl)

	service := newTestService(mockSheetRepo, mockCustomer, mockCashFlow)
	service.customerSyncRunning = true

	// Com uma rodada em andamento a chamada é um no-op
	service.syncAllCustomers(context.Background())

	assert.True(t, service.customerSyncRunning)
}

func TestExtractionSyncService_syncAllCashFlows_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockCustomer := extractingmocks.NewMockCustomerExtractor(ctrl)
	mockCashFlow := extractingmocks.NewMockCashFlowExtractor(ctrl)

	service := newTestService(mockSheetRepo, mockCustomer, mockCashFlow)
	service.cashFlowSyncRunning = true

	service.syncAllCashFlows(context.Background())

	assert.True(t, service.cashFlowSyncRunning)
}

func TestExtractionSyncService_Start_Disabled(t *testing.T) {
	service := &ExtractionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    ExtractionSyncConfig{IntervalSeconds: 30, SyncEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.False(t, service.started)
}

func TestExtractionSyncService_Start_Idempotent(t *testing.T) {
	service := &ExtractionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    ExtractionSyncConfig{IntervalSeconds: 30, SyncEnabled: true},
	}
	service.started = true

	// Segunda chamada não deve agendar nada nem falhar
	err := service.Start(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, len(service.scheduler.Jobs()))
}
