package ingesting

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/shakinm/xlsReader/xls"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

// parseXLS lê o formato binário legado com o xlsReader. A biblioteca
// trabalha a partir de um caminho de arquivo, então o conteúdo é gravado
// em um arquivo temporário antes da leitura.
func parseXLS(content []byte) ([]domain.ParsedSheet, error) {
	tempFile, err := os.CreateTemp("", "mymoney-*.xls")
	if err != nil {
		return nil, fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := io.Copy(tempFile, bytes.NewReader(content)); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("falha ao escrever no arquivo temporário: %w", err)
	}
	// Fecha o arquivo para que xls.OpenFile possa lê-lo
	tempFile.Close()

	workbook, err := xls.OpenFile(tempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o arquivo .xls: %w", err)
	}

	sheets := make([]domain.ParsedSheet, 0, workbook.GetNumberSheets())

	for sheetIndex := 0; sheetIndex < workbook.GetNumberSheets(); sheetIndex++ {
		sheet, err := workbook.GetSheet(sheetIndex)
		if err != nil || sheet == nil {
			continue
		}

		grid := make([][]domain.CellValue, 0, int(sheet.GetNumberRows()))
		for i := 0; i <= int(sheet.GetNumberRows()); i++ {
			row, err := sheet.GetRow(i)
			if err != nil || row == nil {
				continue
			}

			cells := make([]domain.CellValue, 0, len(row.GetCols()))
			for _, col := range row.GetCols() {
				if col == nil {
					cells = append(cells, domain.EmptyCell())
					continue
				}
				cells = append(cells, NormalizeCell(col.GetString()))
			}
			grid = append(grid, cells)
		}

		if parsed := buildSheet(sheet.GetName(), grid); parsed != nil {
			sheets = append(sheets, *parsed)
		}
	}

	return sheets, nil
}
