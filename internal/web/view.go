package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/cohort-dashboard/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Rótulos do seletor e das listas de fórmulas
var selectionLabels = map[domain.Selection]string{
	domain.SelectionPrimary: "Основная таблица",
	domain.SelectionRepeat:  "Повторные покупатели",
}

type option struct {
	Value   domain.Selection
	Label   string
	Checked bool
}

type formulaGroup struct {
	Label string
	Items []domain.FormulaDescription
}

type pageData struct {
	Heading  string
	Options  []option
	View     *domain.TableView
	Formulas []formulaGroup
}

// Views renderiza a página completa e o fragmento da área de exibição
type Views struct {
	heading   string
	templates *template.Template
}

func NewViews(heading string) (*Views, error) {
	tmpl, err := template.New("dashboard").
		Funcs(template.FuncMap{"css": inlineStyle}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "web: parse templates")
	}

	return &Views{
		heading:   heading,
		templates: tmpl,
	}, nil
}

// Page escreve o documento inteiro com o seletor marcado em view.Selection
func (v *Views) Page(w io.Writer, view *domain.TableView, formulas map[domain.Selection][]domain.FormulaDescription) error {
	data := pageData{
		Heading: v.heading,
		View:    view,
	}

	for _, selection := range domain.Selections {
		data.Options = append(data.Options, option{
			Value:   selection,
			Label:   selectionLabels[selection],
			Checked: selection == view.Selection,
		})
		data.Formulas = append(data.Formulas, formulaGroup{
			Label: selectionLabels[selection],
			Items: formulas[selection],
		})
	}

	return v.execute(w, "page", data)
}

// Fragment escreve apenas o título e a tabela, que substituem #table-container por inteiro
func (v *Views) Fragment(w io.Writer, view *domain.TableView) error {
	return v.execute(w, "fragment", view)
}

// execute renderiza em buffer para não mandar HTML pela metade quando o template falha
func (v *Views) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := v.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, "web: execute %s", name)
	}
	_, err := buf.WriteTo(w)
	return err
}

// inlineStyle converte o mapa de estilos em CSS com as propriedades ordenadas
func inlineStyle(style map[string]string) template.CSS {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+style[k])
	}
	return template.CSS(strings.Join(parts, "; "))
}
