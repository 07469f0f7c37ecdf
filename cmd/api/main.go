package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/repository"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage"
	"github.com/vfg2006/portfolio-admin-api/infrastructure/storage/storageclient"
	"github.com/vfg2006/portfolio-admin-api/internal/api"
	"github.com/vfg2006/portfolio-admin-api/internal/config"
	"github.com/vfg2006/portfolio-admin-api/internal/scheduler"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/content"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/profiling"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/publishing"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/showcasing"
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

	contentRepo := repository.NewContentRepository(pgConn)
	articleRepo := repository.NewArticleRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	techStackRepo := repository.NewTechStackRepository(pgConn)
	experienceRepo := repository.NewExperienceRepository(pgConn)
	testimonialRepo := repository.NewTestimonialRepository(pgConn)
	pricingRepo := repository.NewPricingRepository(pgConn)
	visitorRepo := repository.NewVisitorRepository(pgConn)

	storageClient := storageclient.NewClient(cfg)
	storageService := storage.NewService(storageClient)

	contentService := content.NewService(contentRepo, storageService)
	articleService := publishing.NewService(articleRepo, storageService)
	showcaseService := showcasing.NewService(projectRepo, techStackRepo, storageService)
	catalogService := cataloging.NewService(pricingRepo, storageService)
	profileService := profiling.NewService(experienceRepo, testimonialRepo, storageService)
	analyzerService := analyzing.NewService(visitorRepo)

	// Inicializa o agendador de consolidação diária de visitantes
	visitorRollupSyncService := scheduler.NewVisitorRollupSyncService(analyzerService, cfg)

	if err := visitorRollupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de visitantes")
	} else {
		logrus.Info("Agendador de consolidação de visitantes iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		contentService,
		articleService,
		showcaseService,
		catalogService,
		profileService,
		analyzerService,
		visitorRollupSyncService,
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
