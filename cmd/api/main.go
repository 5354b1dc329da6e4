package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/renezit0/goalflow-api/infrastructure/database/postgres"
	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/internal/api"
	"github.com/renezit0/goalflow-api/internal/config"
	"github.com/renezit0/goalflow-api/internal/scheduler"
	"github.com/renezit0/goalflow-api/internal/usecases/authenticating"
	"github.com/renezit0/goalflow-api/internal/usecases/dashboarding"
	"github.com/renezit0/goalflow-api/internal/usecases/perioding"
	"github.com/sirupsen/logrus"
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

	storeRepo := repository.NewStoreRepository(pgConn)
	periodRepo := repository.NewPeriodRepository(pgConn)
	targetRepo := repository.NewStoreTargetRepository(pgConn)
	saleRepo := repository.NewStoreSaleRepository(pgConn)
	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	dashboardService, err := dashboarding.NewService(cfg, storeRepo, periodRepo, targetRepo, saleRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de dashboard")
	}

	periodService := perioding.NewService(periodRepo)

	// Inicializa o agendador de snapshots diários de métricas
	dailySnapshotService := scheduler.NewDailySnapshotService(
		storeRepo,
		periodRepo,
		snapshotRepo,
		dashboardService,
		cfg,
	)

	if err := dailySnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots diários")
	} else {
		logrus.Info("Agendador de snapshots diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		periodService,
		storeRepo,
		authenticator,
		dailySnapshotService,
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
