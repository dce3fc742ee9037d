package extracting

// Os conjuntos de palavras-chave abaixo são o "esquema de fato" dos extratos:
// o formato de exportação mistura banners de seção, totais acumulados e
// seções não relacionadas em uma única grade, sem delimitador estrutural
// além das convenções de texto. São dados de configuração, ajustados ao
// formato observado, e podem ser estendidos via ExtractorConfig.

// ExtractorConfig agrupa as heurísticas configuráveis dos extratores.
type ExtractorConfig struct {
	// Cabeçalho da seção de informações do cliente
	CustomerHeaderLabels []string
	CustomerHeaderToken  string
	// Valores de coluna 2 que indicam que a linha não é um nome
	NonNameSentinels []string

	// Seção de fluxo de caixa
	SectionTokens       []string
	ItemHeaderLabel     string
	TotalLabel          string
	MonthlyAverageLabel string
	// Janela de colunas varrida no cabeçalho em busca de rótulos de mês
	MonthColumnStart int
	MonthColumnEnd   int

	// Cascata de exclusão de linhas
	ExcludedItemLabels []string
	ExcludedSubstrings []string
	OtherSectionTokens []string
	IncomeKeywords     []string
	ExpenseKeywords    []string
}

// DefaultConfig devolve as heurísticas ajustadas ao formato de exportação
// estudado (extratos de finanças pessoais em coreano).
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		CustomerHeaderLabels: []string{"이름", "고객정보"},
		CustomerHeaderToken:  "이름",
		NonNameSentinels:     []string{"항목", "현금흐름현황"},

		SectionTokens:       []string{"현금흐름현황", "현금흐름"},
		ItemHeaderLabel:     "항목",
		TotalLabel:          "총계",
		MonthlyAverageLabel: "월평균",
		MonthColumnStart:    4,
		MonthColumnEnd:      16,

		ExcludedItemLabels: []string{
			"월수입 총계",
			"월지출 총계",
			"순수입 총계",
			"항목",
			"수입",
			"지출",
			"합계",
		},
		ExcludedSubstrings: []string{"총계", "현황", "분석"},
		OtherSectionTokens: []string{"자산", "부채", "대출", "보험", "투자", "예금", "적금"},
		IncomeKeywords: []string{
			"금융수입",
			"급여",
			"기타수입",
			"사업수입",
			"상여금",
			"앱테크",
			"용돈",
		},
		ExpenseKeywords: []string{
			"경조/선물",
			"교육/학습",
			"교통",
			"금융",
			"문화/여가",
			"뷰티/미용",
			"생활",
			"식비",
			"여행/숙박",
			"온라인쇼핑",
			"의료/건강",
			"자녀/육아",
			"자동차",
			"주거/통신",
			"카페/간식",
			"패션/쇼핑",
		},
	}
}
