package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Metrics   Metrics   `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins    []string      `mapstructure:"cors_allowed_origins"`
}

type Dashboard struct {
	Title string `mapstructure:"dashboard_title"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8050") // Porta padrão da versão original; o provedor de hospedagem injeta PORT
	v.SetDefault("READ_HEADER_TIMEOUT", "2s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DASHBOARD_TITLE", "Анализ юнит-экономики по когортам")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

// NewConfig lê .env (quando existir) e variáveis de ambiente
func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL
	return Load(viper.New())
}

// Load monta a configuração a partir de uma instância do Viper já preparada
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Address retorna host:port para o listener HTTP
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, seguindo com variáveis de ambiente")
}
