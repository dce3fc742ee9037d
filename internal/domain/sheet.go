package domain

import "strconv"

// Sheet é uma aba persistida de um arquivo enviado.
type Sheet struct {
	ID          int64  `json:"id"`
	UploadID    int64  `json:"upload_id"`
	Name        string `json:"sheet_name"`
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
}

// RowRecord é uma linha não vazia de uma aba. O mapa de dados usa o índice
// da coluna (base 1) em formato texto como chave, espelhando a coluna JSON.
type RowRecord struct {
	ID       int64                `json:"id"`
	SheetID  int64                `json:"sheet_id"`
	RowIndex int                  `json:"row_index"`
	Data     map[string]CellValue `json:"data"`
}

// Cell devolve o valor da coluna indicada (base 1). Colunas ausentes
// resultam no sentinela de célula vazia.
func (r RowRecord) Cell(column int) CellValue {
	if r.Data == nil {
		return EmptyCell()
	}

	value, ok := r.Data[cellKey(column)]
	if !ok {
		return EmptyCell()
	}

	return value
}

// SheetWithRecords agrega a aba e suas linhas para o endpoint de detalhe.
type SheetWithRecords struct {
	Sheet   Sheet       `json:"sheet"`
	Records []RowRecord `json:"records"`
}

// ParsedSheet é o resultado da ingestão de uma aba, antes da persistência.
type ParsedSheet struct {
	Name        string
	Rows        [][]CellValue
	RowCount    int
	ColumnCount int
}

func cellKey(column int) string {
	return strconv.Itoa(column)
}
