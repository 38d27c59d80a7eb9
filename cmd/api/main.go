package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/integrator/dataset"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/rendering"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/automobile-sales-dashboard/internal/api"
	"github.com/vfg2006/automobile-sales-dashboard/internal/config"
	"github.com/vfg2006/automobile-sales-dashboard/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O banco só é aberto quando o dataset vem do PostgreSQL
	var salesRecordRepo repository.SalesRecordRepository
	if cfg.Dataset.Source == config.DatasetSourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		salesRecordRepo = repository.NewSalesRecordRepository(pgConn)
	}

	datasetClient := datasetclient.NewClient(cfg)
	datasetIntegrator := dataset.New(cfg, datasetClient, salesRecordRepo)

	// Sem dataset não há dashboard: qualquer falha na carga encerra o processo
	records, err := datasetIntegrator.LoadSalesRecords(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	dashboardService := dashboarding.NewService(records)
	renderer := rendering.NewRenderer(cfg)
	exporter := rendering.NewExporter()

	server, err := api.New(cfg, dashboardService, renderer, exporter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
