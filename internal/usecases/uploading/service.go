package uploading

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/domain"
	"github.com/vfg2006/mymoney-api/internal/usecases/ingesting"
	"github.com/vfg2006/mymoney-api/pkg/utils"
)

// ErrEmptyDocument indica um arquivo sem nenhuma aba com dados.
var ErrEmptyDocument = errors.New("documento sem abas com dados")

// Uploader orquestra a ingestão de um arquivo e a persistência do resultado.
type Uploader interface {
	Ingest(ctx context.Context, content []byte, filename string) (*domain.UploadResponse, error)
}

type service struct {
	parser     ingesting.Parser
	uploadRepo repository.UploadRepository
	sheetRepo  repository.SheetRepository
	recordRepo repository.RecordRepository
}

func NewService(
	parser ingesting.Parser,
	uploadRepo repository.UploadRepository,
	sheetRepo repository.SheetRepository,
	recordRepo repository.RecordRepository,
) Uploader {
	return &service{
		parser:     parser,
		uploadRepo: uploadRepo,
		sheetRepo:  sheetRepo,
		recordRepo: recordRepo,
	}
}

// Ingest interpreta o arquivo, registra o histórico de upload e grava cada
// aba com suas linhas não vazias. As escritas são feitas por entidade, sem
// transação abrangente, então uma falha parcial deixa as abas já gravadas.
func (s *service) Ingest(ctx context.Context, content []byte, filename string) (*domain.UploadResponse, error) {
	sheets, err := s.parser.Parse(content, filename)
	if err != nil {
		return nil, err
	}

	if len(sheets) == 0 {
		return nil, ErrEmptyDocument
	}

	code, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar código do upload: %w", err)
	}

	upload, err := s.uploadRepo.Create(ctx, &domain.Upload{
		Code:       code,
		Filename:   filename,
		SheetCount: len(sheets),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar upload: %w", err)
	}

	for _, parsed := range sheets {
		sheet, err := s.sheetRepo.Create(ctx, &domain.Sheet{
			UploadID:    upload.ID,
			Name:        parsed.Name,
			RowCount:    parsed.RowCount,
			ColumnCount: parsed.ColumnCount,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao gravar aba %s: %w", parsed.Name, err)
		}

		if err := s.recordRepo.BulkCreate(ctx, sheet.ID, parsed.Rows); err != nil {
			return nil, fmt.Errorf("erro ao gravar linhas da aba %s: %w", parsed.Name, err)
		}

		logrus.WithFields(logrus.Fields{
			"upload_id":  upload.ID,
			"sheet_id":   sheet.ID,
			"sheet_name": sheet.Name,
			"rows":       parsed.RowCount,
		}).Info("Aba gravada")
	}

	return &domain.UploadResponse{
		UploadID:   upload.ID,
		Code:       upload.Code,
		Filename:   upload.Filename,
		SheetCount: upload.SheetCount,
		Message:    "arquivo processado com sucesso",
	}, nil
}
