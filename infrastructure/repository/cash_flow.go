package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

const cashFlowTable = "cash_flow"

type CashFlowRepository interface {
	// Upsert cria ou atualiza a entrada usando o par (aba, nome do item)
	// como chave natural. O booleano indica se uma nova entrada foi criada.
	Upsert(ctx context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, bool, error)
}

type cashFlowRepository struct {
	conn *postgres.Connection
}

func NewCashFlowRepository(conn *postgres.Connection) CashFlowRepository {
	return &cashFlowRepository{
		conn: conn,
	}
}

func (r *cashFlowRepository) Upsert(ctx context.Context, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, bool, error) {
	monthlyData, err := json.Marshal(entry.MonthlyData)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao serializar série mensal: %w", err)
	}

	query, args, err := squirrel.
		Insert(cashFlowTable).
		Columns(
			"sheet_id",
			"data_record_id",
			"item_name",
			"item_type",
			"total",
			"monthly_average",
			"monthly_data",
		).
		Values(
			entry.SheetID,
			entry.RecordID,
			entry.ItemName,
			string(entry.ItemType),
			entry.Total,
			entry.MonthlyAverage,
			monthlyData,
		).
		Suffix(`
			ON CONFLICT (sheet_id, item_name) DO UPDATE SET
				data_record_id = EXCLUDED.data_record_id,
				item_type = EXCLUDED.item_type,
				total = EXCLUDED.total,
				monthly_average = EXCLUDED.monthly_average,
				monthly_data = EXCLUDED.monthly_data,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	created := false
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt, &created); err != nil {
		return nil, false, fmt.Errorf("erro ao executar upsert do fluxo de caixa: %w", err)
	}

	return entry, created, nil
}
