package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/cohort-dashboard/internal/domain"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/internal/web"
	"github.com/vfg2006/cohort-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cohort-dashboard/pkg/log"
)

// parseSelection valida o parâmetro na borda; o renderer só recebe valores do enum
func parseSelection(w http.ResponseWriter, raw string) (domain.Selection, bool) {
	selection, ok := domain.ParseSelection(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidSelection, "Seleção de tabela inválida", map[string]any{
			"selection": raw,
			"allowed":   domain.Selections,
		})
		return "", false
	}
	return selection, true
}

// writeRenderError traduz o erro do renderer em resposta de API. A mensagem do erro vai
// para o cliente porque só descreve a seleção recebida.
func writeRenderError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar tabela")

	code := apiErrors.ErrInternalServer
	var renderErr *rendering.RenderError
	if errors.As(err, &renderErr) {
		code = renderErr.Code
	}
	apiErrors.WriteAPIError(w, apiErrors.FromError(err, code))
}

// DashboardPage retorna a página completa com a tabela da seleção atual
func DashboardPage(service rendering.Renderer, views *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selection, ok := parseSelection(w, r.URL.Query().Get("selection"))
		if !ok {
			return
		}

		view, err := service.Render(selection)
		if err != nil {
			writeRenderError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := views.Page(w, view, service.Formulas()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao gerar página")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao gerar página", nil)
		}
	}
}

// TableFragment retorna apenas a área de exibição, que o seletor troca por inteiro
func TableFragment(service rendering.Renderer, views *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, ok := parseSelection(w, r.URL.Query().Get("selection"))
		if !ok {
			return
		}

		view, err := service.Render(selection)
		if err != nil {
			writeRenderError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"selection": selection,
			"rows":      len(view.Rows),
		}).Debug("dashboard: fragmento renderizado")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := views.Fragment(w, view); err != nil {
			logger.WithError(err).Error("dashboard: erro ao gerar fragmento")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao gerar fragmento", nil)
		}
	}
}
