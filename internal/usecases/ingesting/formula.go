package ingesting

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// evalFormula avalia o subconjunto mínimo de fórmulas suportado: apenas
// SUM sobre referências de célula e intervalos retangulares A1:B2.
//
// O segundo retorno indica presença de valor. Uma soma que totaliza
// exatamente zero é tratada como ausência, para não mascarar uma célula
// genuinamente sem valor com um 0 artificial — comportamento herdado do
// sistema original e coberto por teste. Qualquer outra forma de fórmula
// resolve para o literal 0; a avaliação nunca falha.
func evalFormula(formula string, rows [][]string) (float64, bool) {
	body, ok := sumBody(formula)
	if !ok {
		return 0, true
	}

	total := 0.0
	for _, arg := range splitTopLevelArgs(body) {
		total += sumArgument(strings.TrimSpace(arg), rows)
	}

	if total == 0 {
		return 0, false
	}

	return total, true
}

// sumBody extrai o interior de uma chamada SUM(...). Qualquer outro formato
// de fórmula é considerado não suportado.
func sumBody(formula string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(formula), "="))

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SUM(") || !strings.HasSuffix(trimmed, ")") {
		return "", false
	}

	return trimmed[len("SUM(") : len(trimmed)-1], true
}

// splitTopLevelArgs separa argumentos por vírgulas de nível superior:
// vírgulas aninhadas em parênteses não quebram o argumento.
func splitTopLevelArgs(body string) []string {
	args := make([]string, 0, 4)
	depth := 0
	start := 0

	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, body[start:i])
				start = i + 1
			}
		}
	}

	args = append(args, body[start:])
	return args
}

// sumArgument soma uma referência de célula única ou um intervalo A1:B2.
// Células não numéricas dentro do intervalo contribuem com zero.
func sumArgument(arg string, rows [][]string) float64 {
	if arg == "" {
		return 0
	}

	if before, after, found := strings.Cut(arg, ":"); found {
		return sumRange(before, after, rows)
	}

	col, row, err := excelize.CellNameToCoordinates(arg)
	if err != nil {
		return 0
	}

	return cellNumber(rows, col, row)
}

func sumRange(startRef, endRef string, rows [][]string) float64 {
	startCol, startRow, err := excelize.CellNameToCoordinates(strings.TrimSpace(startRef))
	if err != nil {
		return 0
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(strings.TrimSpace(endRef))
	if err != nil {
		return 0
	}

	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}

	total := 0.0
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			total += cellNumber(rows, col, row)
		}
	}

	return total
}

// cellNumber lê o valor em cache da célula (coordenadas base 1) como número.
func cellNumber(rows [][]string, col, row int) float64 {
	if row < 1 || row > len(rows) {
		return 0
	}

	cells := rows[row-1]
	if col < 1 || col > len(cells) {
		return 0
	}

	raw := strings.ReplaceAll(strings.TrimSpace(cells[col-1]), ",", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}

// formatAmount serializa um valor avaliado de volta para a forma textual
// que o normalizador reconhece como numérica.
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
