package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/rendering"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/vfg2006/automobile-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/automobile-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/automobile-sales-dashboard/pkg/log"
	"github.com/vfg2006/automobile-sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboardOptions retorna as opções e os valores iniciais dos dois dropdowns
func GetDashboardOptions(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, "dashboard-options", service.Options())
	})
}

// GetYearSelector informa se o container do seletor de ano deve ser exibido
func GetYearSelector(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.ReportKind(r.URL.Query().Get("report_kind"))
		state := service.SetReportKind(kind)

		logger.WithFields(log.Fields{
			"report_kind": kind,
			"visible":     state.Visible,
		}).Debug("year-selector: visibilidade calculada")

		writeJSON(w, logger, "year-selector", state)
	})
}

// RenderCharts recalcula os quatro gráficos da seleção atual
func RenderCharts(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, ok := buildView(w, r, service)
		if !ok {
			return
		}

		fields := log.Fields{
			"report_kind": view.Selection.ReportKind,
			"charts":      len(view.Charts),
		}
		if view.Selection.HasYear() {
			fields["year"] = *view.Selection.Year
		}
		logger.WithFields(fields).Info("charts: seleção renderizada")

		writeJSON(w, logger, "charts", view)
	})
}

// RenderChartImage desenha um único gráfico da seleção como SVG ou PNG
func RenderChartImage(service dashboarding.Dashboard, renderer rendering.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		position, err := strconv.Atoi(params.ByName("position"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "position deve ser um número inteiro", nil)
			return
		}

		selection, err := parseSelection(r.URL.Query())
		if err != nil {
			writeSelectionError(w, err)
			return
		}

		format, err := rendering.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "format deve ser svg ou png", nil)
			return
		}

		chart, err := service.Chart(selection, position)
		if errors.Is(err, dashboarding.ErrChartNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico não encontrado para a seleção", map[string]any{
				"position":    position,
				"report_kind": selection.ReportKind,
			})
			return
		}
		if err != nil {
			logger.WithError(err).Error("chart-image: erro ao buscar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar gráfico", nil)
			return
		}

		// Renderiza em memória para não enviar uma imagem pela metade em caso de erro
		var buf bytes.Buffer
		err = renderer.Render(*chart, format, &buf)
		if errors.Is(err, rendering.ErrEmptyChart) {
			apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico sem dados para a seleção", map[string]any{
				"position": position,
			})
			return
		}
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"position": position,
				"format":   format,
			}).Error("chart-image: erro ao renderizar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("chart-image: erro ao escrever resposta")
		}
	})
}

// ExportCharts baixa os dados agregados da seleção como planilha xlsx
func ExportCharts(service dashboarding.Dashboard, exporter rendering.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, ok := buildView(w, r, service)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := exporter.Export(view, &buf); err != nil {
			logger.WithError(err).Error("export: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("automobile-sales-%s.xlsx", view.RenderID)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("export: erro ao escrever resposta")
		}
	})
}

// buildView valida a seleção e monta a visão. Em caso de erro a resposta já foi escrita.
func buildView(w http.ResponseWriter, r *http.Request, service dashboarding.Dashboard) (domain.DashboardView, bool) {
	selection, err := parseSelection(r.URL.Query())
	if err != nil {
		writeSelectionError(w, err)
		return domain.DashboardView{}, false
	}

	renderID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao gerar render id")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador", nil)
		return domain.DashboardView{}, false
	}

	return domain.DashboardView{
		RenderID:  renderID,
		Selection: selection,
		Charts:    service.Render(selection),
	}, true
}

func writeSelectionError(w http.ResponseWriter, err error) {
	if errors.Is(err, errMissingReportKind) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), map[string]string{"field": "report_kind"})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]string{"field": "year"})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, operation string, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Errorf("%s: erro ao codificar resposta", operation)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NotFound responde caminhos desconhecidos no formato padrão da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
}
