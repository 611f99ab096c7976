package rendering

import (
	"maps"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cohort-dashboard/internal/dataset"
	"github.com/vfg2006/cohort-dashboard/internal/domain"
	"github.com/vfg2006/cohort-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cohort-dashboard/pkg/metrics"
)

// Renderer produz o fragmento da área de exibição para uma seleção
type Renderer interface {
	Render(selection domain.Selection) (*domain.TableView, error)
	Formulas() map[domain.Selection][]domain.FormulaDescription
}

// Estilos aplicados a todas as células e à tabela
var (
	CellStyle = map[string]string{
		"border":     "1px solid black",
		"padding":    "6px",
		"text-align": "center",
	}
	TableStyle = map[string]string{
		"width":           "100%",
		"border-collapse": "collapse",
		"margin":          "20px auto",
	}
)

type Service struct {
	provider dataset.Provider
}

func NewService(provider dataset.Provider) Renderer {
	return &Service{
		provider: provider,
	}
}

// Render é uma função pura da seleção: a cada chamada devolve uma visão nova e completa
func (s *Service) Render(selection domain.Selection) (*domain.TableView, error) {
	start := time.Now()

	view, err := s.render(selection)
	if err != nil {
		metrics.ObserveRender(selection.String(), time.Since(start), metrics.OutcomeError)
		logrus.WithError(err).WithField("selection", selection).Error("rendering: seleção inválida recebida")
		return nil, err
	}

	metrics.ObserveRender(selection.String(), time.Since(start), metrics.OutcomeSuccess)
	return view, nil
}

func (s *Service) render(selection domain.Selection) (*domain.TableView, error) {
	if !selection.Valid() {
		return nil, NewRenderError(ErrUnknownSelection, apiErrors.ErrInternalServer, selection.String())
	}

	ds, ok := s.provider.Dataset(selection)
	if !ok {
		return nil, NewRenderError(
			errors.Wrapf(ErrDatasetMissing, "provider %T", s.provider),
			apiErrors.ErrInternalServer,
			selection.String(),
		)
	}

	rows := make([][]string, 0, ds.Len())
	cells := make([][]domain.Metric, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		rows = append(rows, ds.Row(i))
		cells = append(cells, ds.Cells(i))
	}

	return &domain.TableView{
		Selection:  selection,
		Dataset:    ds.Name(),
		Title:      ds.Title(),
		Header:     ds.ColumnNames(),
		Rows:       rows,
		Cells:      cells,
		CellStyle:  maps.Clone(CellStyle),
		TableStyle: maps.Clone(TableStyle),
	}, nil
}

// Formulas retorna as duas listas de fórmulas, que ficam sempre visíveis na página
func (s *Service) Formulas() map[domain.Selection][]domain.FormulaDescription {
	out := make(map[domain.Selection][]domain.FormulaDescription, len(domain.Selections))
	for _, selection := range domain.Selections {
		out[selection] = s.provider.Formulas(selection)
	}
	return out
}

