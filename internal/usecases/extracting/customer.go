package extracting

import (
	"context"
	"fmt"

	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

// extractionRowLimit limita a leitura de linhas por aba durante a extração.
const extractionRowLimit = 10000

// CustomerExtractor localiza o cabeçalho de informações do cliente em uma
// aba e colhe a linha de dados logo abaixo dele em um perfil tipado. O
// booleano indica se o perfil foi criado nesta chamada em vez de atualizado.
type CustomerExtractor interface {
	ExtractFromSheet(ctx context.Context, sheetID int64) (*domain.Customer, bool, error)
}

type customerExtractor struct {
	recordRepo   repository.RecordRepository
	customerRepo repository.CustomerRepository
	config       ExtractorConfig
}

func NewCustomerExtractor(
	recordRepo repository.RecordRepository,
	customerRepo repository.CustomerRepository,
	config ExtractorConfig,
) CustomerExtractor {
	return &customerExtractor{
		recordRepo:   recordRepo,
		customerRepo: customerRepo,
		config:       config,
	}
}

// ExtractFromSheet aplica a heurística e faz o upsert do perfil usando a
// linha de origem como chave natural. Não encontrar o cabeçalho ou a linha
// de dados não é erro: o resultado é simplesmente nulo.
func (e *customerExtractor) ExtractFromSheet(ctx context.Context, sheetID int64) (*domain.Customer, bool, error) {
	records, err := e.recordRepo.ListBySheet(ctx, sheetID, 0, extractionRowLimit)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao carregar linhas da aba %d: %w", sheetID, err)
	}

	dataRow := e.findDataRow(records)
	if dataRow == nil {
		return nil, false, nil
	}

	name := dataRow.Cell(2).Coerce()
	if name == "" || matchesExactly(name, e.config.NonNameSentinels) {
		return nil, false, nil
	}

	customer := &domain.Customer{
		RecordID:    dataRow.ID,
		Name:        name,
		Gender:      optionalText(dataRow.Cell(3)),
		Age:         parseDigitsOnly(dataRow.Cell(4)),
		CreditScore: parseDigitsOnly(dataRow.Cell(5)),
		Email:       optionalEmail(dataRow.Cell(6)),
	}

	saved, created, err := e.customerRepo.Upsert(ctx, customer)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao salvar perfil do cliente: %w", err)
	}

	return saved, created, nil
}

// findDataRow varre as linhas em ordem crescente de índice atrás do primeiro
// cabeçalho reconhecido e devolve a linha imediatamente abaixo dele.
func (e *customerExtractor) findDataRow(records []domain.RowRecord) *domain.RowRecord {
	headerIndex := -1
	for _, record := range records {
		label := labelOf(record)
		if matchesExactly(label, e.config.CustomerHeaderLabels) ||
			(label != "" && containsAny(label, []string{e.config.CustomerHeaderToken})) {
			headerIndex = record.RowIndex
			break
		}
	}

	if headerIndex < 0 {
		return nil
	}

	for i := range records {
		if records[i].RowIndex == headerIndex+1 {
			return &records[i]
		}
	}

	return nil
}

func optionalText(cell domain.CellValue) *string {
	text := cell.Coerce()
	if text == "" {
		return nil
	}
	return &text
}

// optionalEmail trata o literal "-" como ausência, convenção do formato de
// exportação para campos não preenchidos.
func optionalEmail(cell domain.CellValue) *string {
	text := cell.Coerce()
	if text == "" || text == "-" {
		return nil
	}
	return &text
}
