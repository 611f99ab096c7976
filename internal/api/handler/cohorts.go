package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/pkg/apiErrors"
	"github.com/vfg2006/cohort-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("cohorts: erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

// GetCohortTable retorna a visão da tabela em JSON
func GetCohortTable(service rendering.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		selection, ok := parseSelection(w, params.ByName("selection"))
		if !ok {
			return
		}

		view, err := service.Render(selection)
		if err != nil {
			writeRenderError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	}
}

// GetFormulas retorna as listas de fórmulas das duas tabelas
func GetFormulas(service rendering.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, service.Formulas())
	}
}
