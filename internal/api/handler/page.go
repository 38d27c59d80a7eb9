package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/vfg2006/automobile-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/automobile-sales-dashboard/pkg/log"
)

var dashboardPage = template.Must(template.New("dashboard").Parse(tmplDashboardPage))

type pageData struct {
	Options           domain.DashboardOptions
	DefaultReportKind string
	YearDisplay       string
}

// DashboardPage serve a página com os dois dropdowns e a área dos gráficos
func DashboardPage(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options := service.Options()
		data := pageData{
			Options:           options,
			DefaultReportKind: string(options.DefaultReportKind),
			YearDisplay:       service.SetReportKind(options.DefaultReportKind).Display,
		}

		var buf bytes.Buffer
		if err := dashboardPage.Execute(&buf, data); err != nil {
			logger.WithError(err).Error("page: erro ao montar a página")
			http.Error(w, "Erro ao montar a página", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("page: erro ao escrever resposta")
		}
	})
}
