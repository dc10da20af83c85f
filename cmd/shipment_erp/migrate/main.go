package main

import (
	"shipment_erp/internal/app/config"
	"shipment_erp/internal/app/dsn"
	"shipment_erp/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	connString := conf.DBDsn
	if connString == "" {
		connString = dsn.FromEnv()
	}
	rep, err := repository.Open(conf.DBDriver, connString)
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}
	defer rep.Close()

	// Порядок миграций: сначала parts, потом shipments
	if err := rep.AutoMigrate(); err != nil {
		logrus.Fatalf("error migrating database: %v", err)
	}

	logrus.Info("Database migration completed")
}
