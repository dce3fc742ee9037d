package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind identifica o tipo de valor de uma célula normalizada.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellTemporal
)

// CellValue é a variante fechada usada em todo o pipeline de extração.
// Valores temporais são sempre armazenados como texto ISO-8601, nunca como
// time.Time, para garantir uma representação uniforme no registro de linha.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
}

func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Number: f}
}

func TemporalCell(iso string) CellValue {
	return CellValue{Kind: CellTemporal, Text: iso}
}

// IsEmpty informa se a célula corresponde ao sentinela de célula vazia.
func (c CellValue) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Coerce converte o valor da célula para uma string aparada, usada pelas
// heurísticas de classificação de linha. Números são convertidos para texto,
// textos são aparados e qualquer outro tipo resulta em string vazia.
func (c CellValue) Coerce() string {
	switch c.Kind {
	case CellText, CellTemporal:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Raw devolve a forma escalar persistida no registro de linha.
func (c CellValue) Raw() interface{} {
	switch c.Kind {
	case CellText, CellTemporal:
		return c.Text
	case CellNumber:
		return c.Number
	default:
		return ""
	}
}

// MarshalJSON serializa a célula na forma escalar usada pela coluna JSON.
func (c CellValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Raw())
}

// UnmarshalJSON reconstrói a variante a partir do escalar persistido.
func (c *CellValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		if v == "" {
			*c = EmptyCell()
		} else {
			*c = TextCell(v)
		}
	case float64:
		*c = NumberCell(v)
	default:
		*c = EmptyCell()
	}

	return nil
}
