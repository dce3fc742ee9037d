package extracting

import (
	"context"
	"fmt"

	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

// CashFlowExtractor localiza a seção de fluxo de caixa de uma aba, deriva o
// mapeamento dinâmico de colunas de mês a partir do cabeçalho e classifica
// cada linha subsequente como item do livro, limite de seção ou ruído. O
// inteiro indica quantas entradas foram criadas nesta chamada; as demais
// foram atualizadas.
type CashFlowExtractor interface {
	ExtractFromSheet(ctx context.Context, sheetID int64) ([]domain.CashFlowEntry, int, error)
}

type cashFlowExtractor struct {
	recordRepo   repository.RecordRepository
	cashFlowRepo repository.CashFlowRepository
	config       ExtractorConfig
}

func NewCashFlowExtractor(
	recordRepo repository.RecordRepository,
	cashFlowRepo repository.CashFlowRepository,
	config ExtractorConfig,
) CashFlowExtractor {
	return &cashFlowExtractor{
		recordRepo:   recordRepo,
		cashFlowRepo: cashFlowRepo,
		config:       config,
	}
}

// monthColumn associa um índice de coluna ao rótulo de mês descoberto no
// cabeçalho. A ordem de descoberta segue a ordem das colunas.
type monthColumn struct {
	column int
	label  string
}

// ExtractFromSheet devolve as entradas extraídas e já reconciliadas. A
// ausência da seção ou do cabeçalho resulta em lista vazia, não em erro.
func (e *cashFlowExtractor) ExtractFromSheet(ctx context.Context, sheetID int64) ([]domain.CashFlowEntry, int, error) {
	records, err := e.recordRepo.ListBySheet(ctx, sheetID, 0, extractionRowLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao carregar linhas da aba %d: %w", sheetID, err)
	}

	headerPos := e.findHeaderPosition(records)
	if headerPos < 0 {
		return []domain.CashFlowEntry{}, 0, nil
	}

	months := e.mapMonthColumns(records[headerPos])

	entries := make([]domain.CashFlowEntry, 0)
	createdCount := 0
	for _, record := range records[headerPos+1:] {
		itemName := labelOf(record)
		if e.shouldSkip(itemName) {
			continue
		}

		entry := domain.CashFlowEntry{
			SheetID:        sheetID,
			RecordID:       record.ID,
			ItemName:       itemName,
			ItemType:       e.classify(itemName),
			Total:          parseAmount(record.Cell(2)),
			MonthlyAverage: parseAmount(record.Cell(3)),
			MonthlyData:    e.monthlySeries(record, months),
		}

		saved, created, err := e.cashFlowRepo.Upsert(ctx, &entry)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao salvar item %q do fluxo de caixa: %w", itemName, err)
		}

		if created {
			createdCount++
		}
		entries = append(entries, *saved)
	}

	return entries, createdCount, nil
}

// findHeaderPosition localiza o início da seção de fluxo de caixa e, a
// partir dele, a posição da linha de cabeçalho de colunas ("항목").
func (e *cashFlowExtractor) findHeaderPosition(records []domain.RowRecord) int {
	sectionPos := -1
	for i, record := range records {
		if containsAny(labelOf(record), e.config.SectionTokens) {
			sectionPos = i
			break
		}
	}

	if sectionPos < 0 {
		return -1
	}

	for i := sectionPos + 1; i < len(records); i++ {
		if labelOf(records[i]) == e.config.ItemHeaderLabel {
			return i
		}
	}

	return -1
}

// mapMonthColumns varre a janela fixa de colunas do cabeçalho: qualquer
// coluna não vazia que não seja o rótulo de total ou de média mensal vira
// uma coluna de mês.
func (e *cashFlowExtractor) mapMonthColumns(header domain.RowRecord) []monthColumn {
	months := make([]monthColumn, 0, e.config.MonthColumnEnd-e.config.MonthColumnStart+1)

	for col := e.config.MonthColumnStart; col <= e.config.MonthColumnEnd; col++ {
		label := header.Cell(col).Coerce()
		if label == "" || label == e.config.TotalLabel || label == e.config.MonthlyAverageLabel {
			continue
		}
		months = append(months, monthColumn{column: col, label: label})
	}

	return months
}

// shouldSkip aplica a cascata de exclusão que separa itens do livro de
// banners de seção, totais acumulados e dados de outras seções do extrato.
func (e *cashFlowExtractor) shouldSkip(itemName string) bool {
	if itemName == "" || matchesExactly(itemName, e.config.ExcludedItemLabels) {
		return true
	}

	if containsAny(itemName, e.config.ExcludedSubstrings) {
		return true
	}

	if isBareNumber(itemName) || isSectionBanner(itemName) {
		return true
	}

	return containsAny(itemName, e.config.OtherSectionTokens)
}

// classify decide o tipo do item; a verificação de receita tem precedência
// quando ambos os conjuntos casariam.
func (e *cashFlowExtractor) classify(itemName string) domain.CashFlowType {
	if containsAny(itemName, e.config.IncomeKeywords) {
		return domain.CashFlowIncome
	}
	if containsAny(itemName, e.config.ExpenseKeywords) {
		return domain.CashFlowExpense
	}
	return domain.CashFlowUnclassified
}

// monthlySeries monta a série mensal da linha; valores que não passam na
// regra numérica são omitidos, nunca gravados como zero.
func (e *cashFlowExtractor) monthlySeries(record domain.RowRecord, months []monthColumn) map[string]float64 {
	series := make(map[string]float64, len(months))

	for _, month := range months {
		if amount := parseAmount(record.Cell(month.column)); amount != nil {
			series[month.label] = *amount
		}
	}

	return series
}
