// Package dataset carrega o dataset histórico de vendas de automóveis
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/automobile-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/automobile-sales-dashboard/internal/config"
	"github.com/vfg2006/automobile-sales-dashboard/internal/domain"
)

type DatasetIntegrator interface {
	LoadSalesRecords(ctx context.Context) ([]domain.SalesRecord, error)
}

type DatasetService struct {
	cfg        *config.Config
	Client     datasetclient.Client
	repository repository.SalesRecordRepository
}

// New cria o integrador do dataset. O repositório só é usado quando DATASET_SOURCE=postgres.
func New(cfg *config.Config, client datasetclient.Client, salesRecordRepo repository.SalesRecordRepository) DatasetIntegrator {
	return &DatasetService{
		cfg:        cfg,
		Client:     client,
		repository: salesRecordRepo,
	}
}

func (s *DatasetService) LoadSalesRecords(ctx context.Context) ([]domain.SalesRecord, error) {
	logger := logrus.WithField("source", s.cfg.Dataset.Source)

	var (
		records []domain.SalesRecord
		err     error
	)

	switch s.cfg.Dataset.Source {
	case config.DatasetSourceURL:
		logger.WithField("url", s.cfg.Dataset.URL).Info("dataset: baixando CSV")
		records, err = s.loadFromURL(ctx)
	case config.DatasetSourceFile:
		logger.WithField("path", s.cfg.Dataset.Path).Info("dataset: lendo CSV local")
		records, err = s.loadFromFile()
	case config.DatasetSourcePostgres:
		logger.Info("dataset: lendo registros do PostgreSQL")
		records, err = s.loadFromPostgres(ctx)
	default:
		return nil, fmt.Errorf("fonte de dataset desconhecida: %q", s.cfg.Dataset.Source)
	}

	if err != nil {
		return nil, err
	}

	logger.WithField("records", len(records)).Info("dataset: registros carregados")
	return records, nil
}

func (s *DatasetService) loadFromURL(ctx context.Context) ([]domain.SalesRecord, error) {
	data, err := s.Client.FetchCSV(ctx, s.cfg.Dataset.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar o dataset: %w", err)
	}

	records, err := ParseSalesRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar o dataset: %w", err)
	}

	return records, nil
}

func (s *DatasetService) loadFromFile() ([]domain.SalesRecord, error) {
	file, err := os.Open(s.cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o dataset: %w", err)
	}
	defer file.Close()

	records, err := ParseSalesRecords(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar o dataset: %w", err)
	}

	return records, nil
}

func (s *DatasetService) loadFromPostgres(ctx context.Context) ([]domain.SalesRecord, error) {
	if s.repository == nil {
		return nil, fmt.Errorf("repositório de vendas não configurado")
	}

	records, err := s.repository.ListSalesRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o dataset no banco: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return records, nil
}
