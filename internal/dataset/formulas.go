package dataset

import "github.com/vfg2006/cohort-dashboard/internal/domain"

// Descrições exibidas abaixo das tabelas. São texto puro, não são calculadas.
var primaryFormulas = []domain.FormulaDescription{
	{Metric: "C1", Expression: "B / UA × 100", Explanation: "конверсия привлечённых пользователей в первую покупку, %"},
	{Metric: "APC", Expression: "T / B", Explanation: "среднее число покупок на одного покупателя"},
	{Metric: "CLTV", Expression: "(AOV − COGS) × APC", Explanation: "валовая ценность покупателя за время жизни"},
	{Metric: "LTV", Expression: "CLTV × C1 / 100", Explanation: "ценность привлечённого пользователя с учётом конверсии"},
	{Metric: "LTC", Expression: "AC / UA", Explanation: "стоимость привлечения одного пользователя"},
	{Metric: "Revenue", Expression: "T × AOV", Explanation: "выручка когорты"},
	{Metric: "CM", Expression: "Revenue − AC − COGS × T", Explanation: "маржинальная прибыль когорты"},
	{Metric: "Retention_Rate", Expression: "B(>1 покупки) / B × 100", Explanation: "доля покупателей, совершивших повторную покупку, %"},
}

var repeatFormulas = []domain.FormulaDescription{
	{Metric: "C1", Expression: "B / UA × 100", Explanation: "доля пользователей когорты с более чем одной покупкой, %"},
	{Metric: "APC", Expression: "T / B", Explanation: "среднее число покупок на повторного покупателя"},
	{Metric: "CLTV", Expression: "(AOV − COGS) × APC", Explanation: "валовая ценность повторного покупателя"},
	{Metric: "LTV", Expression: "CLTV × C1 / 100", Explanation: "ценность пользователя когорты с учётом конверсии в повторную покупку"},
	{Metric: "LTC/CPA", Expression: "AC / UA", Explanation: "затраты на удержание в расчёте на пользователя когорты"},
	{Metric: "CM", Expression: "Revenue − AC − COGS × T", Explanation: "маржинальная прибыль сегмента"},
}
