package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cohort-dashboard/internal/dataset"
	"github.com/vfg2006/cohort-dashboard/internal/domain"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
)

func render(t *testing.T, selection domain.Selection) (*domain.TableView, map[domain.Selection][]domain.FormulaDescription) {
	t.Helper()
	service := rendering.NewService(dataset.NewStatic())
	view, err := service.Render(selection)
	require.NoError(t, err)
	return view, service.Formulas()
}

func TestViews_Fragment(t *testing.T) {
	views, err := NewViews("Cohorts")
	require.NoError(t, err)

	view, _ := render(t, domain.SelectionPrimary)

	var buf bytes.Buffer
	require.NoError(t, views.Fragment(&buf, view))
	html := buf.String()

	assert.Contains(t, html, "<h3")
	assert.Contains(t, html, view.Title)
	assert.Equal(t, len(view.Header), strings.Count(html, "<th "))
	assert.Equal(t, len(view.Rows)*len(view.Header), strings.Count(html, "<td "))
	assert.Contains(t, html, `<td style="border: 1px solid black; padding: 6px; text-align: center">9810</td>`)
	assert.Contains(t, html, "border-collapse: collapse")
	assert.NotContains(t, html, "<html")
}

func TestViews_Page(t *testing.T) {
	views, err := NewViews("Cohorts")
	require.NoError(t, err)

	view, formulas := render(t, domain.SelectionRepeat)

	var buf bytes.Buffer
	require.NoError(t, views.Page(&buf, view, formulas))
	html := buf.String()

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, `value="repeat" checked`)
	assert.NotContains(t, html, `value="primary" checked`)
	assert.Contains(t, html, `id="table-container"`)
	assert.Contains(t, html, "LTC/CPA")
	assert.Contains(t, html, "0.0%")

	// As duas listas de fórmulas aparecem independentemente da seleção
	for _, list := range formulas {
		for _, f := range list {
			assert.Contains(t, html, f.Metric)
		}
	}
	assert.Equal(t, 2, strings.Count(html, "<ul>"))
}

func TestInlineStyle(t *testing.T) {
	css := inlineStyle(map[string]string{"padding": "6px", "border": "1px solid black"})
	assert.Equal(t, "border: 1px solid black; padding: 6px", string(css))
}
