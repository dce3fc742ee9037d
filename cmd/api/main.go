package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/infrastructure/repository"
	"github.com/vfg2006/mymoney-api/internal/api"
	"github.com/vfg2006/mymoney-api/internal/config"
	"github.com/vfg2006/mymoney-api/internal/scheduler"
	"github.com/vfg2006/mymoney-api/internal/usecases/extracting"
	"github.com/vfg2006/mymoney-api/internal/usecases/ingesting"
	"github.com/vfg2006/mymoney-api/internal/usecases/uploading"
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

	uploadRepo := repository.NewUploadRepository(pgConn)
	sheetRepo := repository.NewSheetRepository(pgConn)
	recordRepo := repository.NewRecordRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	cashFlowRepo := repository.NewCashFlowRepository(pgConn)

	parser := ingesting.NewParser()
	uploader := uploading.NewService(parser, uploadRepo, sheetRepo, recordRepo)

	extractorConfig := extracting.DefaultConfig()
	customerExtractor := extracting.NewCustomerExtractor(recordRepo, customerRepo, extractorConfig)
	cashFlowExtractor := extracting.NewCashFlowExtractor(recordRepo, cashFlowRepo, extractorConfig)

	// Inicializa o agendador de extração periódica
	extractionSyncService := scheduler.NewExtractionSyncService(
		sheetRepo,
		customerExtractor,
		cashFlowExtractor,
		cfg,
	)

	if err := extractionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de extração")
	} else {
		logrus.Info("Agendador de extração iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		uploader,
		uploadRepo,
		sheetRepo,
		recordRepo,
		customerExtractor,
		cashFlowExtractor,
		extractionSyncService,
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
