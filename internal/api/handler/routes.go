package handler

import (
	"net/http"

	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/rendering"
	"github.com/vfg2006/automobile-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/automobile-sales-dashboard/internal/usecases/dashboarding"
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

func Page(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboard, renderer rendering.Renderer, exporter rendering.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/options",
			Method:  http.MethodGet,
			Handler: GetDashboardOptions(service),
		},
		{
			Path:    "/v1/dashboard/year-selector",
			Method:  http.MethodGet,
			Handler: GetYearSelector(service),
		},
		{
			Path:    "/v1/dashboard/charts",
			Method:  http.MethodGet,
			Handler: RenderCharts(service),
		},
		{
			Path:    "/v1/dashboard/charts/:position",
			Method:  http.MethodGet,
			Handler: RenderChartImage(service, renderer),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportCharts(service, exporter),
		},
	}
}
