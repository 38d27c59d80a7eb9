package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/rendering"
	"github.com/vfg2006/automobile-sales-dashboard/internal/config"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
	"github.com/vfg2006/automobile-sales-dashboard/internal/usecases/dashboarding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Chart:  config.Chart{Width: 480, Height: 320},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func testRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{Year: 1980, Month: "Jan", Recession: true, AutomobileSales: 456, VehicleType: "Supperminicar", AdvertisingExpenditure: 1558, UnemploymentRate: 5.4},
		{Year: 1980, Month: "Feb", Recession: true, AutomobileSales: 555.9, VehicleType: "Mediumfamilycar", AdvertisingExpenditure: 3048, UnemploymentRate: 4.8},
		{Year: 1981, Month: "Mar", Recession: false, AutomobileSales: 620, VehicleType: "Sports", AdvertisingExpenditure: 3137, UnemploymentRate: 3.4},
	}
}

func newTestHandler() http.Handler {
	cfg := testConfig()
	return NewHandler(cfg, dashboarding.NewService(testRecords()), rendering.NewRenderer(cfg), rendering.NewExporter())
}

func TestNewHandler_Healthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestNewHandler_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DASH_002")
}

func TestNewHandler_DashboardFlow(t *testing.T) {
	h := newTestHandler()

	t.Run("Página inicial", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Automobile Sales Dashboard")
	})

	t.Run("Gráficos de recessão com CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/charts?report_kind=recession", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

		var view domain.DashboardView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Len(t, view.Charts, domain.ChartsPerView)
	})

	t.Run("Imagem de cada gráfico anual", func(t *testing.T) {
		for position := 1; position <= domain.ChartsPerView; position++ {
			rec := httptest.NewRecorder()
			target := "/v1/dashboard/charts/" + string(rune('0'+position)) + "?report_kind=yearly&year=1980"
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusOK, rec.Code, "posição %d", position)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		}
	})

	t.Run("Ano sem registros não tem imagem", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/charts/3?report_kind=yearly&year=2000", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Exportação", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/export?report_kind=recession", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotZero(t, rec.Body.Len())
	})
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	server, err := New(cfg, dashboarding.NewService(testRecords()), rendering.NewRenderer(cfg), rendering.NewExporter())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou após o cancelamento do contexto")
	}
}

func TestServer_Run_ReturnsListenError(t *testing.T) {
	// Ocupa uma porta para que o ListenAndServe falhe
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer listener.Close()

	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Server.Port = port
	server, err := New(cfg, dashboarding.NewService(testRecords()), rendering.NewRenderer(cfg), rendering.NewExporter())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(context.Background())
	}()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao iniciar o servidor")
	case <-time.After(5 * time.Second):
		t.Fatal("Run não retornou o erro de escuta da porta")
	}
}
