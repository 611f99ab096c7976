package dataset

import (
	"github.com/vfg2006/cohort-dashboard/internal/domain"
)

const (
	PrimaryTitle = "ЮНИТ-ЭКОНОМИКА ДЛЯ КЛИЕНТОВ ПО КОГОРТАМ ПРИВЛЕЧЕНИЯ"
	RepeatTitle  = "ЮНИТ-ЭКОНОМИКА ДЛЯ СЕГМЕНТА ПОКУПАТЕЛЕЙ С >1 ПОКУПКАМИ"
)

// Provider expõe as tabelas de coortes e as listas de fórmulas de cada uma
type Provider interface {
	Dataset(selection domain.Selection) (*domain.CohortDataset, bool)
	Formulas(selection domain.Selection) []domain.FormulaDescription
}

// Static guarda as duas tabelas construídas a partir de literais.
// Nada é alterado depois de NewStatic, então pode ser compartilhado entre requisições sem lock.
type Static struct {
	datasets map[domain.Selection]*domain.CohortDataset
	formulas map[domain.Selection][]domain.FormulaDescription
}

func NewStatic() *Static {
	return &Static{
		datasets: map[domain.Selection]*domain.CohortDataset{
			domain.SelectionPrimary: domain.NewCohortDataset("primary", PrimaryTitle, primaryColumns, primaryRecords()),
			domain.SelectionRepeat:  domain.NewCohortDataset("repeat", RepeatTitle, repeatColumns, repeatRecords()),
		},
		formulas: map[domain.Selection][]domain.FormulaDescription{
			domain.SelectionPrimary: primaryFormulas,
			domain.SelectionRepeat:  repeatFormulas,
		},
	}
}

func (s *Static) Dataset(selection domain.Selection) (*domain.CohortDataset, bool) {
	ds, ok := s.datasets[selection]
	return ds, ok
}

// Formulas retorna uma cópia da lista; nil para seleções desconhecidas
func (s *Static) Formulas(selection domain.Selection) []domain.FormulaDescription {
	list, ok := s.formulas[selection]
	if !ok {
		return nil
	}
	return append([]domain.FormulaDescription(nil), list...)
}
