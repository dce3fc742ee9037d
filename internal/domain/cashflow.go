package domain

import "time"

// CashFlowType classifica um item do fluxo de caixa.
type CashFlowType string

const (
	CashFlowIncome       CashFlowType = "수입"
	CashFlowExpense      CashFlowType = "지출"
	CashFlowUnclassified CashFlowType = "미분류"
)

// CashFlowEntry é uma linha do livro de fluxo de caixa extraída de uma aba.
// A chave natural é o par (SheetID, ItemName).
type CashFlowEntry struct {
	ID             int64              `json:"id"`
	SheetID        int64              `json:"sheet_id"`
	RecordID       int64              `json:"data_record_id"`
	ItemName       string             `json:"item_name"`
	ItemType       CashFlowType       `json:"item_type"`
	Total          *float64           `json:"total"`
	MonthlyAverage *float64           `json:"monthly_average"`
	MonthlyData    map[string]float64 `json:"monthly_data"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
