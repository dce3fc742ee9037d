package ingesting

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

// parseXLSX lê um documento OOXML com o excelize. Usa os valores calculados
// em cache; quando uma célula de fórmula não tem valor em cache, tenta a
// avaliação mínima de SUM antes de desistir.
func parseXLSX(content []byte) ([]domain.ParsedSheet, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := make([]domain.ParsedSheet, 0, len(file.GetSheetList()))

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linhas da aba %q: %w", name, err)
		}

		grid := make([][]domain.CellValue, 0, len(rows))
		for rowIdx, row := range rows {
			cells := make([]domain.CellValue, 0, len(row))
			for colIdx, raw := range row {
				if raw == "" {
					// Sem valor em cache: pode ser uma célula de fórmula.
					raw = formulaFallback(file, name, rows, colIdx+1, rowIdx+1)
				}
				cells = append(cells, NormalizeCell(raw))
			}
			grid = append(grid, cells)
		}

		if sheet := buildSheet(name, grid); sheet != nil {
			sheets = append(sheets, *sheet)
		}
	}

	return sheets, nil
}

// formulaFallback devolve o valor avaliado da fórmula da célula em formato
// texto, ou string vazia quando a célula não carrega fórmula ou a avaliação
// resulta em ausência. Nunca propaga erro: parsing local degrada, não aborta.
func formulaFallback(file *excelize.File, sheet string, rows [][]string, col, row int) string {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}

	formula, err := file.GetCellFormula(sheet, cellName)
	if err != nil || formula == "" {
		return ""
	}

	value, ok := evalFormula(formula, rows)
	if !ok {
		return ""
	}

	logrus.WithFields(logrus.Fields{
		"sheet":   sheet,
		"cell":    cellName,
		"formula": formula,
	}).Debug("Fórmula avaliada via fallback de SUM")

	return formatAmount(value)
}
