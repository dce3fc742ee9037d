package extracting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mymoney-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// ledgerFixture monta uma aba com a seção de fluxo de caixa, o cabeçalho de
// colunas com três meses e uma mistura de itens do livro com ruído típico do
// formato de exportação.
func ledgerFixture() []domain.RowRecord {
	return []domain.RowRecord{
		makeRecord(1, 8, map[int]domain.CellValue{1: domain.TextCell("2.현금흐름현황")}),
		makeRecord(2, 9, map[int]domain.CellValue{
			1: domain.TextCell("항목"),
			2: domain.TextCell("총계"),
			3: domain.TextCell("월평균"),
			4: domain.TextCell("1월"),
			5: domain.TextCell("2월"),
			6: domain.TextCell("3월"),
		}),
		makeRecord(3, 10, map[int]domain.CellValue{
			1: domain.TextCell("식비"),
			2: domain.NumberCell(150000),
			3: domain.NumberCell(12500),
			4: domain.NumberCell(50000),
			5: domain.TextCell("50,000"),
			6: domain.TextCell("-"),
		}),
		makeRecord(4, 11, map[int]domain.CellValue{
			1: domain.TextCell("급여"),
			2: domain.NumberCell(3000000),
			3: domain.NumberCell(250000),
			4: domain.NumberCell(1000000),
		}),
		makeRecord(5, 12, map[int]domain.CellValue{
			1: domain.TextCell("월수입 총계"),
			2: domain.NumberCell(3000000),
		}),
		makeRecord(6, 13, map[int]domain.CellValue{1: domain.TextCell("재무분석")}),
		makeRecord(7, 14, map[int]domain.CellValue{1: domain.TextCell("3.재무현황")}),
		makeRecord(8, 15, map[int]domain.CellValue{1: domain.TextCell("1234")}),
		makeRecord(9, 16, map[int]domain.CellValue{
			1: domain.TextCell("보험"),
			2: domain.NumberCell(90000),
		}),
		makeRecord(10, 17, map[int]domain.CellValue{
			1: domain.TextCell("기타"),
			2: domain.TextCell("abc"),
		}),
	}
}

func TestCashFlowExtractor_ExtractFromSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)

	extractor := NewCashFlowExtractor(mockRecordRepo, mockCashFlowRepo, DefaultConfig())

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(5), 0, extractionRowLimit).
		Return(ledgerFixture(), nil)

	var nextID int64
	mockCashFlowRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, bool, error) {
			saved := *entry
			nextID++
			saved.ID = nextID
			return &saved, true, nil
		}).
		Times(3)

	entries, created, err := extractor.ExtractFromSheet(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 3, created)
	if !assert.Len(t, entries, 3) {
		return
	}

	// 식비: despesa com total, média e série mensal parcial (3월 inválido)
	assert.Equal(t, "식비", entries[0].ItemName)
	assert.Equal(t, domain.CashFlowExpense, entries[0].ItemType)
	if assert.NotNil(t, entries[0].Total) {
		assert.Equal(t, 150000.0, *entries[0].Total)
	}
	if assert.NotNil(t, entries[0].MonthlyAverage) {
		assert.Equal(t, 12500.0, *entries[0].MonthlyAverage)
	}
	assert.Equal(t, map[string]float64{"1월": 50000, "2월": 50000}, entries[0].MonthlyData)

	// 급여: receita com um único mês preenchido
	assert.Equal(t, "급여", entries[1].ItemName)
	assert.Equal(t, domain.CashFlowIncome, entries[1].ItemType)
	assert.Equal(t, map[string]float64{"1월": 1000000}, entries[1].MonthlyData)

	// 기타: não casa com nenhum conjunto e fica sem classificação
	assert.Equal(t, "기타", entries[2].ItemName)
	assert.Equal(t, domain.CashFlowUnclassified, entries[2].ItemType)
	assert.Nil(t, entries[2].Total)
	assert.Empty(t, entries[2].MonthlyData)
}

func TestCashFlowExtractor_ExtractFromSheet_NoSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)

	extractor := NewCashFlowExtractor(mockRecordRepo, mockCashFlowRepo, DefaultConfig())

	records := []domain.RowRecord{
		makeRecord(1, 1, map[int]domain.CellValue{1: domain.TextCell("재무설계 보고서")}),
		makeRecord(2, 2, map[int]domain.CellValue{1: domain.TextCell("이름")}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	entries, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCashFlowExtractor_ExtractFromSheet_SectionWithoutHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)

	extractor := NewCashFlowExtractor(mockRecordRepo, mockCashFlowRepo, DefaultConfig())

	records := []domain.RowRecord{
		makeRecord(1, 8, map[int]domain.CellValue{1: domain.TextCell("현금흐름현황")}),
		makeRecord(2, 9, map[int]domain.CellValue{1: domain.TextCell("식비")}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	entries, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCashFlowExtractor_ExtractFromSheet_UpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCashFlowRepo := mocks.NewMockCashFlowRepository(ctrl)

	extractor := NewCashFlowExtractor(mockRecordRepo, mockCashFlowRepo, DefaultConfig())

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(5), 0, extractionRowLimit).
		Return(ledgerFixture(), nil)

	mockCashFlowRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil, false, errors.New("banco indisponível"))

	entries, _, err := extractor.ExtractFromSheet(context.Background(), 5)

	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestCashFlowExtractor_classify_IncomePrecedence(t *testing.T) {
	extractor := &cashFlowExtractor{config: DefaultConfig()}

	// "금융수입" contém tanto o token de receita quanto o de despesa "금융";
	// a receita tem precedência.
	assert.Equal(t, domain.CashFlowIncome, extractor.classify("금융수입"))
	assert.Equal(t, domain.CashFlowExpense, extractor.classify("금융"))
	assert.Equal(t, domain.CashFlowUnclassified, extractor.classify("미지정"))
}
