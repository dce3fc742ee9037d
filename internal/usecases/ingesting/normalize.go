package ingesting

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/mymoney-api/internal/domain"
)

// plainNumberPattern aceita apenas números decimais simples. Formas como
// "1e5" ou "NaN" passariam pelo strconv e corromperiam a coluna JSON.
var plainNumberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// isoDateTimeLayout é a forma canônica de valores temporais em todo o
// pipeline: texto ISO-8601 com data e hora, nunca um time.Time nativo.
const isoDateTimeLayout = "2006-01-02T15:04:05"

// temporalLayouts são os formatos de origem reconhecidos nas células.
// O layout canônico vem primeiro para que a renormalização seja estável.
var temporalLayouts = []string{
	isoDateTimeLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
}

// NormalizeCell converte o valor bruto de uma célula em uma das formas
// escalares da variante fechada. Nunca falha: valores ausentes viram o
// sentinela de célula vazia e a conversão é idempotente.
func NormalizeCell(raw string) domain.CellValue {
	if raw == "" {
		return domain.EmptyCell()
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		// Células só com espaços contam como vazias para a regra de linha vazia.
		return domain.EmptyCell()
	}

	if plainNumberPattern.MatchString(trimmed) {
		if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return domain.NumberCell(number)
		}
	}

	for _, layout := range temporalLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return domain.TemporalCell(parsed.Format(isoDateTimeLayout))
		}
	}

	// O texto original é preservado sem aparar: quem consome decide.
	return domain.TextCell(raw)
}
