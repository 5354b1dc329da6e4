package domain

// Category é uma das 5 categorias lógicas usadas nas metas da loja. O conjunto
// é fechado: toda venda é reconciliada para exatamente uma categoria via o
// código bruto gravado em vendas_loja.categoria, ou é descartada da agregação.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryProfitable
	CategoryPerfumery
	CategoryConvenience
	CategoryHealth
)

// AllCategories define a ordem fixa de exibição dos cards no dashboard.
var AllCategories = [5]Category{
	CategoryGeneral,
	CategoryProfitable,
	CategoryPerfumery,
	CategoryConvenience,
	CategoryHealth,
}

// categoryByRawCode mapeia os códigos brutos (vendas e metas por categoria)
// para a categoria lógica. Códigos fora desta tabela não pertencem a nenhuma
// categoria e são ignorados silenciosamente.
var categoryByRawCode = map[string]Category{
	"geral":               CategoryGeneral,
	"r_mais":              CategoryProfitable,
	"rentaveis20":         CategoryProfitable,
	"rentaveis25":         CategoryProfitable,
	"perfumaria_r_mais":   CategoryPerfumery,
	"conveniencia_r_mais": CategoryConvenience,
	"conveniencia":        CategoryConvenience,
	"brinquedo":           CategoryConvenience,
	"saude":               CategoryHealth,
	"goodlife":            CategoryHealth,
}

// CategoryFromRawCode reconcilia um código bruto para a categoria lógica.
// Retorna false quando o código não é reconhecido.
func CategoryFromRawCode(code string) (Category, bool) {
	category, ok := categoryByRawCode[code]
	return category, ok
}

// Code retorna o código usado nas metas por categoria (metas_loja_categorias).
func (c Category) Code() string {
	switch c {
	case CategoryGeneral:
		return "geral"
	case CategoryProfitable:
		return "r_mais"
	case CategoryPerfumery:
		return "perfumaria_r_mais"
	case CategoryConvenience:
		return "conveniencia_r_mais"
	case CategoryHealth:
		return "saude"
	}
	return ""
}

// Label retorna o título exibido no card do dashboard.
func (c Category) Label() string {
	switch c {
	case CategoryGeneral:
		return "Geral"
	case CategoryProfitable:
		return "Rentáveis"
	case CategoryPerfumery:
		return "Perfumaria R+"
	case CategoryConvenience:
		return "Conveniência R+"
	case CategoryHealth:
		return "GoodLife"
	}
	return ""
}

// Slug retorna o identificador usado pelo frontend para estilizar o card.
func (c Category) Slug() string {
	switch c {
	case CategoryGeneral:
		return "geral"
	case CategoryProfitable:
		return "rentavel"
	case CategoryPerfumery:
		return "perfumaria"
	case CategoryConvenience:
		return "conveniencia"
	case CategoryHealth:
		return "goodlife"
	}
	return ""
}
