package uploading

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mymoney-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type stubParser struct {
	sheets []domain.ParsedSheet
	err    error
}

func (p stubParser) Parse(_ []byte, _ string) ([]domain.ParsedSheet, error) {
	return p.sheets, p.err
}

func TestService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUploadRepo := mocks.NewMockUploadRepository(ctrl)
	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	rows := [][]domain.CellValue{
		{domain.TextCell("이름"), domain.TextCell("홍길동")},
		{domain.TextCell("식비"), domain.NumberCell(150000)},
	}

	parser := stubParser{sheets: []domain.ParsedSheet{
		{Name: "고객A", Rows: rows, RowCount: 2, ColumnCount: 2},
	}}

	service := NewService(parser, mockUploadRepo, mockSheetRepo, mockRecordRepo)

	mockUploadRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload *domain.Upload) (*domain.Upload, error) {
			assert.Equal(t, "extrato.xlsx", upload.Filename)
			assert.Equal(t, 1, upload.SheetCount)
			assert.Len(t, upload.Code, 6)

			saved := *upload
			saved.ID = 11
			return &saved, nil
		})

	mockSheetRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sheet *domain.Sheet) (*domain.Sheet, error) {
			assert.Equal(t, int64(11), sheet.UploadID)
			assert.Equal(t, "고객A", sheet.Name)
			assert.Equal(t, 2, sheet.RowCount)

			saved := *sheet
			saved.ID = 21
			return &saved, nil
		})

	mockRecordRepo.EXPECT().
		BulkCreate(gomock.Any(), int64(21), rows).
		Return(nil)

	response, err := service.Ingest(context.Background(), []byte("conteudo"), "extrato.xlsx")

	assert.NoError(t, err)
	if assert.NotNil(t, response) {
		assert.Equal(t, int64(11), response.UploadID)
		assert.Equal(t, 1, response.SheetCount)
	}
}

func TestService_Ingest_EmptyDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUploadRepo := mocks.NewMockUploadRepository(ctrl)
	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	service := NewService(stubParser{}, mockUploadRepo, mockSheetRepo, mockRecordRepo)

	response, err := service.Ingest(context.Background(), []byte("conteudo"), "vazio.xlsx")

	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Nil(t, response)
}

func TestService_Ingest_ParserError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUploadRepo := mocks.NewMockUploadRepository(ctrl)
	mockSheetRepo := mocks.NewMockSheetRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	parserErr := errors.New("arquivo corrompido")
	service := NewService(stubParser{err: parserErr}, mockUploadRepo, mockSheetRepo, mockRecordRepo)

	response, err := service.Ingest(context.Background(), []byte("conteudo"), "extrato.xlsx")

	assert.ErrorIs(t, err, parserErr)
	assert.Nil(t, response)
}
