// Package extracting localiza linhas semanticamente relevantes dentro das
// grades de células e as reconcilia em entidades tipadas.
package extracting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vfg2006/mymoney-api/internal/domain"
)

var (
	bareNumberPattern   = regexp.MustCompile(`^[\d.]+$`)
	sectionBannerPrefix = regexp.MustCompile(`^\d+\.`)
	digitsOnlyPattern   = regexp.MustCompile(`^\d+$`)
	decimalPattern      = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// labelOf coage a coluna 1 da linha para a string aparada usada por todas
// as heurísticas de classificação.
func labelOf(record domain.RowRecord) string {
	return record.Cell(1).Coerce()
}

// matchesExactly vale quando o texto é igual a algum rótulo do conjunto.
func matchesExactly(text string, labels []string) bool {
	for _, label := range labels {
		if text == label {
			return true
		}
	}
	return false
}

// containsAny vale quando o texto contém algum dos tokens como substring.
func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// isBareNumber reconhece itens que são apenas dígitos e pontos ("1.234").
func isBareNumber(text string) bool {
	return bareNumberPattern.MatchString(text)
}

// isSectionBanner reconhece banners de seção como "3.재무현황".
func isSectionBanner(text string) bool {
	return sectionBannerPrefix.MatchString(text)
}

// parseDigitsOnly extrai um inteiro apenas quando o valor coagido é composto
// exclusivamente de dígitos; qualquer outra forma resulta em ausência.
func parseDigitsOnly(cell domain.CellValue) *int {
	text := cell.Coerce()
	if !digitsOnlyPattern.MatchString(text) {
		return nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}

	return &value
}

// parseAmount aplica a regra numérica dos extratores: números são aceitos
// diretamente; textos são aceitos após remoção dos separadores de milhar se
// restarem apenas dígitos, um sinal de menos opcional e no máximo um ponto
// decimal. Qualquer outra forma resulta em ausência, nunca em erro.
func parseAmount(cell domain.CellValue) *float64 {
	switch cell.Kind {
	case domain.CellNumber:
		value := cell.Number
		return &value
	case domain.CellText:
		cleaned := strings.ReplaceAll(strings.TrimSpace(cell.Text), ",", "")
		if !decimalPattern.MatchString(cleaned) {
			return nil
		}

		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}

		return &value
	default:
		return nil
	}
}
