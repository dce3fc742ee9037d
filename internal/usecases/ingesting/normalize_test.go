package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.CellValue
	}{
		{
			name:     "valor ausente vira sentinela vazio",
			raw:      "",
			expected: domain.EmptyCell(),
		},
		{
			name:     "somente espaços vira sentinela vazio",
			raw:      "   ",
			expected: domain.EmptyCell(),
		},
		{
			name:     "número inteiro",
			raw:      "150000",
			expected: domain.NumberCell(150000),
		},
		{
			name:     "número decimal negativo",
			raw:      "-12.5",
			expected: domain.NumberCell(-12.5),
		},
		{
			name:     "notação científica permanece texto",
			raw:      "1e5",
			expected: domain.TextCell("1e5"),
		},
		{
			name:     "data vira ISO-8601 com hora",
			raw:      "2024-11-01",
			expected: domain.TemporalCell("2024-11-01T00:00:00"),
		},
		{
			name:     "texto com separador de milhar não é número",
			raw:      "150,000",
			expected: domain.TextCell("150,000"),
		},
		{
			name:     "rótulo de mês não é temporal",
			raw:      "2024-11",
			expected: domain.TextCell("2024-11"),
		},
		{
			name:     "texto coreano preservado sem aparar",
			raw:      " 식비 ",
			expected: domain.TextCell(" 식비 "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCell(tt.raw))
		})
	}
}

func TestNormalizeCell_TemporalFixedPoint(t *testing.T) {
	once := NormalizeCell("2024-11-01 09:30:00")
	assert.Equal(t, domain.CellTemporal, once.Kind)

	// Renormalizar um valor já normalizado não pode alterá-lo.
	twice := NormalizeCell(once.Text)
	assert.Equal(t, once.Text, twice.Text)
	assert.Equal(t, domain.CellTemporal, twice.Kind)
}
