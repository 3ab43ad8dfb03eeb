package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-rules-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/ads-rules-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/vfg2006/ads-rules-api/infrastructure/repository"
	"github.com/vfg2006/ads-rules-api/internal/api"
	"github.com/vfg2006/ads-rules-api/internal/config"
	"github.com/vfg2006/ads-rules-api/internal/scheduler"
	"github.com/vfg2006/ads-rules-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-rules-api/internal/usecases/ruling"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	ruleRepo := repository.NewRuleRepository(pgConn)
	executionRepo := repository.NewRuleExecutionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	if err := ruleRepo.InitSchema(); err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o schema de regras")
	}

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := amazonclient.NewTokenManager(cfg)
	amazonClient := amazonclient.NewClient(cfg, tokenManager)
	amazonIntegrator := amazon.New(cfg, amazonClient)

	ruleService := ruling.NewService(ruleRepo, executionRepo, cfg)

	// Inicializa o agendador de execução de regras
	ruleRunnerService := scheduler.NewRuleRunnerService(
		ruleRepo,
		executionRepo,
		amazonIntegrator,
		cfg,
	)

	if err := ruleRunnerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de execução de regras")
	} else {
		logrus.Info("Agendador de execução de regras iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ruleService,
		authenticator,
		ruleRunnerService,
	)
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
