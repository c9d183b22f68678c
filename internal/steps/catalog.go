// Package steps содержит статический каталог шагов карты операций.
// Каталог зашит в код и неизменяем на время работы процесса: шаги не
// хранятся в базе, в базе живёт только прогресс клиента по парам
// (client_id, step_id). Доступность шага определяется тарифом клиента.
package steps

import "github.com/nexusgrowth/client-portal/internal/models"

// Step описывает один шаг онбординга и тарифы, на которых он доступен.
type Step struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Plans []string `json:"plans"`
}

var catalog = []Step{
	{ID: "step_1", Title: "Branding completo", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_2", Title: "Produtos validados", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_3", Title: "Checkout configurado", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_4", Title: "Gateway de pagamento configurado", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_5", Title: "Domínio configurado", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_6", Title: "Fornecedor HyperSKU e DSers configurados e integrados", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_7", Title: "Estrutura entregue (100%)", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_8", Title: "Loja pronta para vender", Plans: []string{models.PlanStart, models.PlanPro, models.PlanScale}},
	{ID: "step_9", Title: "Mockup de loja física", Plans: []string{models.PlanPro, models.PlanScale}},
	{ID: "step_10", Title: "Tema Growth Lançamento 2026", Plans: []string{models.PlanScale}},
	{ID: "step_11", Title: "Teaser personalizado de marca", Plans: []string{models.PlanScale}},
	{ID: "step_12", Title: "Instagram e Facebook estruturados", Plans: []string{models.PlanScale}},
	{ID: "step_13", Title: "Pixel Meta ADS configurado", Plans: []string{models.PlanScale}},
	{ID: "step_14", Title: "Criativos profissionais para tráfego", Plans: []string{models.PlanScale}},
	{ID: "step_15", Title: "Gestão de tráfego pago orientada à conversão", Plans: []string{models.PlanScale}},
}

// All возвращает полный каталог шагов.
func All() []Step {
	out := make([]Step, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup возвращает шаг по id.
func Lookup(stepID string) (Step, bool) {
	for _, s := range catalog {
		if s.ID == stepID {
			return s, true
		}
	}
	return Step{}, false
}

// AvailableOn сообщает, доступен ли шаг на данном тарифе.
func (s Step) AvailableOn(plan string) bool {
	for _, p := range s.Plans {
		if p == plan {
			return true
		}
	}
	return false
}

// ForPlan возвращает шаги, доступные на данном тарифе, в порядке каталога.
func ForPlan(plan string) []Step {
	var out []Step
	for _, s := range catalog {
		if s.AvailableOn(plan) {
			out = append(out, s)
		}
	}
	return out
}
