package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

const recordTable = "data_record"

type RecordRepository interface {
	BulkCreate(ctx context.Context, sheetID int64, rows [][]domain.CellValue) error
	ListBySheet(ctx context.Context, sheetID int64, skip, limit int) ([]domain.RowRecord, error)
}

type recordRepository struct {
	conn *postgres.Connection
}

func NewRecordRepository(conn *postgres.Connection) RecordRepository {
	return &recordRepository{
		conn: conn,
	}
}

// BulkCreate persiste as linhas de uma aba em um único INSERT. O índice de
// linha é atribuído em ordem, base 1, contíguo; o mapa de células usa o
// índice de coluna base 1 como chave.
func (r *recordRepository) BulkCreate(ctx context.Context, sheetID int64, rows [][]domain.CellValue) error {
	if len(rows) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(recordTable).
		Columns("sheet_id", "row_index", "data").
		PlaceholderFormat(squirrel.Dollar)

	for i, cells := range rows {
		data := make(map[string]domain.CellValue, len(cells))
		for col, cell := range cells {
			data[strconv.Itoa(col+1)] = cell
		}

		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("erro ao serializar linha %d: %w", i+1, err)
		}

		builder = builder.Values(sheetID, i+1, payload)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registros de linha: %w", err)
	}

	return nil
}

// ListBySheet devolve as linhas da aba em ordem crescente de índice, a
// ordenação da qual todas as heurísticas de extração dependem.
func (r *recordRepository) ListBySheet(ctx context.Context, sheetID int64, skip, limit int) ([]domain.RowRecord, error) {
	query, args, err := squirrel.
		Select("id", "sheet_id", "row_index", "data").
		From(recordTable).
		Where(squirrel.Eq{"sheet_id": sheetID}).
		OrderBy("row_index ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RowRecord, 0)
	for rows.Next() {
		record := domain.RowRecord{}
		var payload []byte

		if err := rows.Scan(&record.ID, &record.SheetID, &record.RowIndex, &payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de linha: %w", err)
		}

		if err := json.Unmarshal(payload, &record.Data); err != nil {
			return nil, fmt.Errorf("erro ao decodificar dados da linha %d: %w", record.RowIndex, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
