package datasetclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/automobile-sales-dashboard/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

type Client interface {
	FetchCSV(ctx context.Context, url string) ([]byte, error)
}

type DatasetClient struct {
	httpClient *http.Client
}

// NewClient cria o cliente HTTP usado para baixar o CSV do dataset
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Dataset.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &DatasetClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *DatasetClient) FetchCSV(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	return data, nil
}
