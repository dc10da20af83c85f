package main

// go run cmd/shipment_erp/main.go

import (
	"context"
	"net/http"
	"os"

	"shipment_erp/internal/app/config"
	"shipment_erp/internal/app/dsn"
	"shipment_erp/internal/app/handler"
	"shipment_erp/internal/app/importer"
	"shipment_erp/internal/app/notify"
	"shipment_erp/internal/app/pkg"
	"shipment_erp/internal/app/repository"
	"shipment_erp/internal/app/service"
	"shipment_erp/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "shipment_erp/docs" // Swagger docs
)

// @title Shipment ERP API
// @version 1.0
// @description Shipment tracking back office: shipments, parts, bulk import, dashboard and tracking mail.
// @BasePath /
func main() {
	ctx := context.Background()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	logCloser, err := config.SetupLogging(conf)
	if err != nil {
		logrus.Fatalf("error setting up logging: %v", err)
	}

	store := openStore(conf)

	if err := os.MkdirAll(conf.UploadDir, 0o755); err != nil {
		logrus.Fatalf("error creating upload dir: %v", err)
	}

	parts := service.NewPartReconciler(store)
	shipments := service.NewShipmentService(store, parts, conf.ListLimit)
	reports := service.NewReportService(store)

	// закрываются в обратном порядке: redis, store, лог
	application := pkg.NewApp(conf, nil, nil)
	application.OnShutdown(logCloser, store)

	var sequence service.Sequence = service.NewStoreSequence(store)
	if conf.RedisEnabled() {
		client, err := utils.NewRedisClient(ctx, conf.RedisEndpoint, conf.RedisPassword)
		if err != nil {
			logrus.Warnf("redis unavailable, enquiry numbers come from the database: %v", err)
		} else {
			sequence = service.NewRedisSequence(client, service.NewStoreSequence(store))
			application.OnShutdown(client)
		}
	}

	imp := importer.NewImporter(shipments)
	if conf.MinioEnabled() {
		client, err := importer.NewMinioClient(importer.MinioConfig{
			Endpoint:  conf.MinioEndpoint,
			AccessKey: conf.MinioAccessKey,
			SecretKey: conf.MinioSecretKey,
			Bucket:    conf.MinioBucket,
			UseSSL:    conf.MinioUseSSL,
		})
		if err != nil {
			logrus.Fatalf("error initializing minio client: %v", err)
		}
		archiver, err := importer.NewMinioArchiver(ctx, client, conf.MinioBucket)
		if err != nil {
			logrus.Warnf("upload archive disabled: %v", err)
		} else {
			imp = imp.WithArchiver(archiver)
		}
	}

	var mailer notify.Mailer = notify.Disabled{}
	if conf.MailEnabled() {
		mailer = notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     conf.MailHost,
			Port:     conf.MailPort,
			User:     conf.MailUser,
			Password: conf.MailPass,
			From:     conf.MailFrom,
		})
	} else {
		logrus.Warn("MAIL_HOST is not set, mail endpoints will fail")
	}

	hand := handler.NewHandler(handler.Deps{
		Store:       store,
		Shipments:   shipments,
		Parts:       parts,
		Reports:     reports,
		Enquiries:   service.NewEnquiryNumbers(sequence),
		Importer:    imp,
		Mailer:      mailer,
		UploadDir:   conf.UploadDir,
		CorsOrigins: conf.CorsOrigins,
		Database:    conf.DBDriver,
	})

	http.DefaultClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	application.Router = router
	application.Handler = hand
	application.Schedule(pkg.NewUploadSweeper(conf.UploadDir, conf.UploadMaxAge, conf.UploadSweepSchedule))
	application.RunApp()
}

func openStore(conf *config.Config) repository.Store {
	if conf.DBDriver == "memory" {
		logrus.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemoryStore()
	}

	connString := conf.DBDsn
	if connString == "" {
		connString = dsn.FromEnv()
	}
	rep, err := repository.Open(conf.DBDriver, connString)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	// sqlite используется локально без отдельного шага миграции
	if conf.DBDriver == "sqlite" {
		if err := rep.AutoMigrate(); err != nil {
			logrus.Fatalf("error migrating database: %v", err)
		}
	}
	return rep
}
