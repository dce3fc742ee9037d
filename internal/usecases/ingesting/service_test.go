package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

func buildWorkbook(t *testing.T, fill func(f *excelize.File)) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	fill(f)

	buffer, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}

func TestParse_UnsupportedExtension(t *testing.T) {
	parser := NewParser()

	sheets, err := parser.Parse([]byte("a;b;c"), "extrato.csv")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, sheets)
}

func TestParse_XLSX(t *testing.T) {
	content := buildWorkbook(t, func(f *excelize.File) {
		_ = f.SetCellValue("Sheet1", "A1", "고객정보")
		_ = f.SetCellValue("Sheet1", "B1", "홍길동")
		// Linha 2 fica totalmente vazia e deve ser descartada
		_ = f.SetCellValue("Sheet1", "A3", "식비")
		_ = f.SetCellValue("Sheet1", "B3", 150000)
		_ = f.SetCellValue("Sheet1", "C3", 12500)
		_ = f.SetCellValue("Sheet1", "D3", 50000)
	})

	parser := NewParser()
	sheets, err := parser.Parse(content, "report.xlsx")
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0]
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, 2, sheet.RowCount, "linha vazia não deve ser persistida")
	assert.Equal(t, 4, sheet.ColumnCount, "coluna mais longa define a contagem")

	assert.Equal(t, domain.TextCell("고객정보"), sheet.Rows[0][0])
	assert.Equal(t, domain.NumberCell(150000), sheet.Rows[1][1])
}

func TestParse_XLSX_EmptyWorkbook(t *testing.T) {
	content := buildWorkbook(t, func(f *excelize.File) {})

	parser := NewParser()
	sheets, err := parser.Parse(content, "vazio.xlsx")
	require.NoError(t, err)

	// Aba sem nenhuma linha não aparece no resultado.
	assert.Empty(t, sheets)
}

func TestParse_XLSX_FormulaFallback(t *testing.T) {
	content := buildWorkbook(t, func(f *excelize.File) {
		_ = f.SetCellValue("Sheet1", "A1", 100)
		_ = f.SetCellValue("Sheet1", "B1", 250)
		// Sem valor calculado em cache: o fallback de SUM deve resolver.
		_ = f.SetCellFormula("Sheet1", "C1", "SUM(A1:B1)")
		_ = f.SetCellValue("Sheet1", "D1", "총계")
	})

	parser := NewParser()
	sheets, err := parser.Parse(content, "report.xlsx")
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	require.GreaterOrEqual(t, len(sheets[0].Rows[0]), 3)
	assert.Equal(t, domain.NumberCell(350), sheets[0].Rows[0][2])
}
