package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

const sheetTable = "sheet_data"

type SheetRepository interface {
	Create(ctx context.Context, sheet *domain.Sheet) (*domain.Sheet, error)
	GetByID(ctx context.Context, id int64) (*domain.Sheet, error)
	ListByUpload(ctx context.Context, uploadID int64) ([]domain.Sheet, error)
	ListAll(ctx context.Context) ([]domain.Sheet, error)
}

type sheetRepository struct {
	conn *postgres.Connection
}

func NewSheetRepository(conn *postgres.Connection) SheetRepository {
	return &sheetRepository{
		conn: conn,
	}
}

func (r *sheetRepository) Create(ctx context.Context, sheet *domain.Sheet) (*domain.Sheet, error) {
	query, args, err := squirrel.
		Insert(sheetTable).
		Columns("upload_id", "sheet_name", "row_count", "column_count").
		Values(sheet.UploadID, sheet.Name, sheet.RowCount, sheet.ColumnCount).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&sheet.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir aba: %w", err)
	}

	return sheet, nil
}

func (r *sheetRepository) GetByID(ctx context.Context, id int64) (*domain.Sheet, error) {
	query, args, err := squirrel.
		Select("id", "upload_id", "sheet_name", "row_count", "column_count").
		From(sheetTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sheet := &domain.Sheet{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&sheet.ID, &sheet.UploadID, &sheet.Name, &sheet.RowCount, &sheet.ColumnCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear aba: %w", err)
	}

	return sheet, nil
}

func (r *sheetRepository) ListByUpload(ctx context.Context, uploadID int64) ([]domain.Sheet, error) {
	return r.list(ctx, squirrel.Eq{"upload_id": uploadID})
}

// ListAll devolve todas as abas armazenadas, usada pelo sincronizador
// periódico para varrer o acervo completo.
func (r *sheetRepository) ListAll(ctx context.Context) ([]domain.Sheet, error) {
	return r.list(ctx, nil)
}

func (r *sheetRepository) list(ctx context.Context, where interface{}) ([]domain.Sheet, error) {
	builder := squirrel.
		Select("id", "upload_id", "sheet_name", "row_count", "column_count").
		From(sheetTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sheets := make([]domain.Sheet, 0)
	for rows.Next() {
		sheet := domain.Sheet{}
		err := rows.Scan(&sheet.ID, &sheet.UploadID, &sheet.Name, &sheet.RowCount, &sheet.ColumnCount)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear aba: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sheets, nil
}
