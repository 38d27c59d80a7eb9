package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Dataset: Dataset{Source: DatasetSourceURL, URL: "http://localhost/data.csv"},
		Chart:   Chart{Width: 640, Height: 400},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "Fonte url com URL informada",
			mutate: func(c *Config) {},
		},
		{
			name:    "Fonte url sem URL",
			mutate:  func(c *Config) { c.Dataset.URL = "" },
			wantErr: true,
		},
		{
			name:    "Fonte file sem caminho",
			mutate:  func(c *Config) { c.Dataset.Source = DatasetSourceFile },
			wantErr: true,
		},
		{
			name: "Fonte file com caminho",
			mutate: func(c *Config) {
				c.Dataset.Source = DatasetSourceFile
				c.Dataset.Path = "sales.csv"
			},
		},
		{
			name:   "Fonte postgres não exige URL",
			mutate: func(c *Config) { c.Dataset.Source = DatasetSourcePostgres; c.Dataset.URL = "" },
		},
		{
			name:    "Fonte desconhecida",
			mutate:  func(c *Config) { c.Dataset.Source = "s3" },
			wantErr: true,
		},
		{
			name:    "Largura de gráfico inválida",
			mutate:  func(c *Config) { c.Chart.Width = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
