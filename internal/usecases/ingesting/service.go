// Package ingesting lê documentos de planilha (.xlsx e .xls legado) e os
// converte em grades ordenadas de células normalizadas.
package ingesting

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vfg2006/mymoney-api/internal/domain"
)

// ErrUnsupportedFormat indica uma extensão de arquivo não reconhecida.
// A falha ocorre antes de qualquer trabalho de parsing.
var ErrUnsupportedFormat = errors.New("formato de arquivo não suportado, use .xlsx ou .xls")

// Parser ingere o conteúdo de um documento e devolve as abas não vazias.
type Parser interface {
	Parse(content []byte, filename string) ([]domain.ParsedSheet, error)
}

type parser struct{}

func NewParser() Parser {
	return &parser{}
}

func (p *parser) Parse(content []byte, filename string) ([]domain.ParsedSheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xlsx":
		sheets, err := parseXLSX(content)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo .xlsx: %w", err)
		}
		return sheets, nil
	case ".xls":
		sheets, err := parseXLS(content)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo .xls: %w", err)
		}
		return sheets, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// buildSheet descarta linhas totalmente vazias e calcula as contagens de
// linha e coluna da aba. Abas sem nenhuma linha resultam em nil.
func buildSheet(name string, rawRows [][]domain.CellValue) *domain.ParsedSheet {
	rows := make([][]domain.CellValue, 0, len(rawRows))

	for _, row := range rawRows {
		if rowIsEmpty(row) {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	return &domain.ParsedSheet{
		Name:        name,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: maxCols,
	}
}

// rowIsEmpty vale quando toda célula normalizada é o sentinela vazio.
func rowIsEmpty(row []domain.CellValue) bool {
	for _, cell := range row {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}
