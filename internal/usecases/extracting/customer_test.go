package extracting

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mymoney-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func makeRecord(id int64, rowIndex int, cells map[int]domain.CellValue) domain.RowRecord {
	data := make(map[string]domain.CellValue, len(cells))
	for column, cell := range cells {
		data[strconv.Itoa(column)] = cell
	}
	return domain.RowRecord{ID: id, SheetID: 1, RowIndex: rowIndex, Data: data}
}

func TestCustomerExtractor_ExtractFromSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	records := []domain.RowRecord{
		makeRecord(1, 2, map[int]domain.CellValue{1: domain.TextCell("재무설계 보고서")}),
		makeRecord(2, 5, map[int]domain.CellValue{
			1: domain.TextCell("이름"),
			2: domain.TextCell("성별"),
			3: domain.TextCell("나이"),
		}),
		makeRecord(3, 6, map[int]domain.CellValue{
			1: domain.TextCell("고객"),
			2: domain.TextCell("홍길동"),
			3: domain.TextCell("남"),
			4: domain.NumberCell(35),
			5: domain.TextCell("720"),
			6: domain.TextCell("-"),
		}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(7), 0, extractionRowLimit).
		Return(records, nil)

	mockCustomerRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer *domain.Customer) (*domain.Customer, bool, error) {
			assert.Equal(t, int64(3), customer.RecordID)
			assert.Equal(t, "홍길동", customer.Name)
			if assert.NotNil(t, customer.Gender) {
				assert.Equal(t, "남", *customer.Gender)
			}
			if assert.NotNil(t, customer.Age) {
				assert.Equal(t, 35, *customer.Age)
			}
			if assert.NotNil(t, customer.CreditScore) {
				assert.Equal(t, 720, *customer.CreditScore)
			}
			assert.Nil(t, customer.Email)

			saved := *customer
			saved.ID = 42
			return &saved, true, nil
		})

	customer, created, err := extractor.ExtractFromSheet(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, created)
	if assert.NotNil(t, customer) {
		assert.Equal(t, int64(42), customer.ID)
		assert.Equal(t, "홍길동", customer.Name)
	}
}

func TestCustomerExtractor_ExtractFromSheet_HeaderToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	// O rótulo composto contém o token de cabeçalho sem ser igual a ele
	records := []domain.RowRecord{
		makeRecord(1, 3, map[int]domain.CellValue{1: domain.TextCell("고객 이름 / 성별")}),
		makeRecord(2, 4, map[int]domain.CellValue{
			1: domain.TextCell("고객"),
			2: domain.TextCell("김영희"),
		}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	mockCustomerRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer *domain.Customer) (*domain.Customer, bool, error) {
			assert.Equal(t, "김영희", customer.Name)
			assert.Nil(t, customer.Gender)
			assert.Nil(t, customer.Age)
			return customer, false, nil
		})

	customer, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, customer)
}

func TestCustomerExtractor_ExtractFromSheet_NoHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	records := []domain.RowRecord{
		makeRecord(1, 1, map[int]domain.CellValue{1: domain.TextCell("재무설계 보고서")}),
		makeRecord(2, 2, map[int]domain.CellValue{1: domain.TextCell("항목")}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	customer, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerExtractor_ExtractFromSheet_SentinelName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	// A linha abaixo do cabeçalho carrega outro rótulo estrutural, não um nome
	records := []domain.RowRecord{
		makeRecord(1, 5, map[int]domain.CellValue{1: domain.TextCell("이름")}),
		makeRecord(2, 6, map[int]domain.CellValue{
			1: domain.TextCell("고객"),
			2: domain.TextCell("항목"),
		}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	customer, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerExtractor_ExtractFromSheet_MissingDataRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	// O cabeçalho existe mas a linha seguinte era vazia e não foi persistida
	records := []domain.RowRecord{
		makeRecord(1, 5, map[int]domain.CellValue{1: domain.TextCell("이름")}),
		makeRecord(2, 8, map[int]domain.CellValue{1: domain.TextCell("현금흐름현황")}),
	}

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(records, nil)

	customer, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerExtractor_ExtractFromSheet_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)

	extractor := NewCustomerExtractor(mockRecordRepo, mockCustomerRepo, DefaultConfig())

	mockRecordRepo.EXPECT().
		ListBySheet(gomock.Any(), int64(1), 0, extractionRowLimit).
		Return(nil, errors.New("banco indisponível"))

	customer, _, err := extractor.ExtractFromSheet(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, customer)
}
