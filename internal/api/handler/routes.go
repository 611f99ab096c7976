package handler

import (
	"net/http"

	"github.com/vfg2006/cohort-dashboard/internal/api/handler/router"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/internal/web"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service rendering.Renderer, views *web.Views) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, views),
		},
		{
			Path:    "/fragments/table",
			Method:  http.MethodGet,
			Handler: TableFragment(service, views),
		},
	}
}

func Cohorts(service rendering.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cohorts/:selection",
			Method:  http.MethodGet,
			Handler: GetCohortTable(service),
		},
		{
			Path:    "/v1/formulas",
			Method:  http.MethodGet,
			Handler: GetFormulas(service),
		},
	}
}

func Metrics(path string, handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}
