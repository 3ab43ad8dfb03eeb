package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	AmazonAds  AmazonAds  `mapstructure:",squash"`
	RuleRunner RuleRunner `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AmazonAds concentra credenciais e endpoints da Amazon Ads API.
// ClientID/ClientSecret/RefreshToken são as credenciais LWA; ProfileID
// identifica o perfil de anunciante usado nas chamadas. Sem esses quatro
// valores a integração fica "não configurada" e o scheduler pula as regras
// sem marcá-las como executadas.
type AmazonAds struct {
	APIBaseURL   string  `mapstructure:"amazon_ads_api_base_url"`
	TokenURL     string  `mapstructure:"amazon_ads_token_url"`
	ClientID     string  `mapstructure:"amazon_ads_client_id"`
	ClientSecret string  `mapstructure:"amazon_ads_client_secret"`
	RefreshToken string  `mapstructure:"amazon_ads_refresh_token"`
	ProfileID    string  `mapstructure:"amazon_ads_profile_id"`
	MinBid       float64 `mapstructure:"amazon_ads_min_bid"`
	MaxBid       float64 `mapstructure:"amazon_ads_max_bid"`
}

// BidBounds devolve os limites de clamp de bid configurados como ponteiros
// opcionais: zero significa "sem limite" e vira nil.
func (c *Config) BidBounds() (*float64, *float64) {
	var minBid, maxBid *float64

	if c.AmazonAds.MinBid > 0 {
		v := c.AmazonAds.MinBid
		minBid = &v
	}
	if c.AmazonAds.MaxBid > 0 {
		v := c.AmazonAds.MaxBid
		maxBid = &v
	}

	return minBid, maxBid
}

type RuleRunner struct {
	PollIntervalSeconds int  `mapstructure:"rule_runner_poll_interval_seconds"`
	Enabled             bool `mapstructure:"rule_runner_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_rules")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("AMAZON_ADS_API_BASE_URL", "https://advertising-api.amazon.com")
	viper.SetDefault("AMAZON_ADS_TOKEN_URL", "https://api.amazon.com/auth/o2/token")
	viper.SetDefault("AMAZON_ADS_CLIENT_ID", "")
	viper.SetDefault("AMAZON_ADS_CLIENT_SECRET", "")
	viper.SetDefault("AMAZON_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("AMAZON_ADS_PROFILE_ID", "")
	viper.SetDefault("AMAZON_ADS_MIN_BID", 0.02) // piso da Amazon para Sponsored Products
	viper.SetDefault("AMAZON_ADS_MAX_BID", 0.0)  // 0 = sem teto

	// Defaults do executor de regras
	viper.SetDefault("RULE_RUNNER_POLL_INTERVAL_SECONDS", 3600) // uma varredura por hora
	viper.SetDefault("RULE_RUNNER_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
