package dataset

import "github.com/vfg2006/cohort-dashboard/internal/domain"

var commonLeadingColumns = []domain.Column{
	{Name: "Cohort", Value: func(r domain.CohortRecord) domain.Metric { return domain.Text(r.Cohort) }},
	{Name: "UA", Value: func(r domain.CohortRecord) domain.Metric { return domain.Int(r.UniqueUsers) }},
	{Name: "C1", Value: func(r domain.CohortRecord) domain.Metric { return r.ConversionRate }},
	{Name: "B", Value: func(r domain.CohortRecord) domain.Metric { return domain.Int(r.Buyers) }},
	{Name: "AOV", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.AverageOrderValue) }},
	{Name: "COGS", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.COGSRate) }},
	{Name: "T", Value: func(r domain.CohortRecord) domain.Metric { return domain.Int(r.Transactions) }},
	{Name: "APC", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.PurchasesPerCustomer) }},
	{Name: "CLTV", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.GrossLTV) }},
	{Name: "LTV", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.LTV) }},
}

var (
	lifetimeCost = func(r domain.CohortRecord) domain.Metric { return domain.Float(r.LifetimeCost) }

	commonTrailingColumns = []domain.Column{
		{Name: "AC", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.AcquisitionCost) }},
		{Name: "CM", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.ContributionMargin) }},
		{Name: "Revenue", Value: func(r domain.CohortRecord) domain.Metric { return domain.Float(r.Revenue) }},
	}
)

var primaryColumns = concatColumns(
	commonLeadingColumns,
	[]domain.Column{{Name: "LTC", Value: lifetimeCost}},
	commonTrailingColumns,
	[]domain.Column{{Name: "Retention_Rate", Value: func(r domain.CohortRecord) domain.Metric {
		if r.RetentionRate == nil {
			return domain.Float(0)
		}
		return domain.Float(*r.RetentionRate)
	}}},
)

// Na tabela de recompra o custo por usuário aparece como LTC/CPA e não há retenção
var repeatColumns = concatColumns(
	commonLeadingColumns,
	[]domain.Column{{Name: "LTC/CPA", Value: lifetimeCost}},
	commonTrailingColumns,
)

func concatColumns(groups ...[]domain.Column) []domain.Column {
	var out []domain.Column
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func rate(v float64) *float64 {
	return &v
}

func primaryRecords() []domain.CohortRecord {
	return []domain.CohortRecord{
		{
			Cohort: "2024-05", UniqueUsers: 9810, ConversionRate: domain.Float(2.01), Buyers: 197,
			AverageOrderValue: 10.0, COGSRate: 1.3, Transactions: 328, PurchasesPerCustomer: 1.66,
			GrossLTV: 14.49, LTV: 0.29, LifetimeCost: 11.55, AcquisitionCost: 113352,
			ContributionMargin: -110498.4, Revenue: 3280, RetentionRate: rate(51.27),
		},
		{
			Cohort: "2024-06", UniqueUsers: 14547, ConversionRate: domain.Float(1.38), Buyers: 201,
			AverageOrderValue: 10.0, COGSRate: 1.3, Transactions: 268, PurchasesPerCustomer: 1.33,
			GrossLTV: 11.60, LTV: 0.16, LifetimeCost: 8.12, AcquisitionCost: 118106,
			ContributionMargin: -115774.4, Revenue: 2680, RetentionRate: rate(33.33),
		},
		{
			Cohort: "2024-07", UniqueUsers: 17094, ConversionRate: domain.Float(0.87), Buyers: 149,
			AverageOrderValue: 10.0, COGSRate: 1.3, Transactions: 149, PurchasesPerCustomer: 1.00,
			GrossLTV: 8.70, LTV: 0.08, LifetimeCost: 5.26, AcquisitionCost: 89907,
			ContributionMargin: -88610.7, Revenue: 1490, RetentionRate: rate(0.00),
		},
	}
}

// A conversão da tabela de recompra já vem formatada como porcentagem
func repeatRecords() []domain.CohortRecord {
	return []domain.CohortRecord{
		{
			Cohort: "2024-05", UniqueUsers: 9810, ConversionRate: domain.Text("1.03%"), Buyers: 101,
			AverageOrderValue: 10.0, COGSRate: 1.3, Transactions: 232, PurchasesPerCustomer: 2.3,
			GrossLTV: 19.98, LTV: 0.21, LifetimeCost: 0.12, AcquisitionCost: 1224,
			ContributionMargin: 794.4, Revenue: 2320,
		},
		{
			Cohort: "2024-06", UniqueUsers: 14547, ConversionRate: domain.Text("0.46%"), Buyers: 67,
			AverageOrderValue: 10.0, COGSRate: 1.3, Transactions: 134, PurchasesPerCustomer: 2.0,
			GrossLTV: 17.40, LTV: 0.08, LifetimeCost: 0.06, AcquisitionCost: 802,
			ContributionMargin: 363.8, Revenue: 1340,
		},
		{
			Cohort: "2024-07", UniqueUsers: 17094, ConversionRate: domain.Text("0.0%"), Buyers: 0,
			AverageOrderValue: 0.0, COGSRate: 0.0, Transactions: 0, PurchasesPerCustomer: 0.0,
			GrossLTV: 0.00, LTV: 0.00, LifetimeCost: 0.00, AcquisitionCost: 0,
			ContributionMargin: 0.0, Revenue: 0,
		},
	}
}
