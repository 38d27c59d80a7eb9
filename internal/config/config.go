package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes possíveis para o dataset de vendas
const (
	DatasetSourceURL      = "url"
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

const defaultDatasetURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/" +
	"IBMDeveloperSkillsNetwork-DV0101EN-SkillsNetwork/Data%20Files/historical_automobile_sales.csv"

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Chart    Chart    `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Dataset struct {
	Source  string        `mapstructure:"dataset_source"`
	URL     string        `mapstructure:"dataset_url"`
	Path    string        `mapstructure:"dataset_path"`
	Timeout time.Duration `mapstructure:"dataset_timeout"`
}

type Chart struct {
	Width  int `mapstructure:"chart_width"`
	Height int `mapstructure:"chart_height"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8050)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/automobile_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Por padrão o CSV é baixado da mesma origem usada no curso
	viper.SetDefault("DATASET_SOURCE", DatasetSourceURL)
	viper.SetDefault("DATASET_URL", defaultDatasetURL)
	viper.SetDefault("DATASET_PATH", "historical_automobile_sales.csv")
	viper.SetDefault("DATASET_TIMEOUT", "45s")

	viper.SetDefault("CHART_WIDTH", 640)
	viper.SetDefault("CHART_HEIGHT", 400)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8050")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional, as variáveis de ambiente já bastam
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica as combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceURL:
		if c.Dataset.URL == "" {
			return fmt.Errorf("config: DATASET_URL é obrigatório quando DATASET_SOURCE=%s", DatasetSourceURL)
		}
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("config: DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", DatasetSourceFile)
		}
	case DatasetSourcePostgres:
	default:
		return fmt.Errorf("config: DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: dimensões de gráfico inválidas: %dx%d", c.Chart.Width, c.Chart.Height)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
