package db

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão com o SQL Server a partir da DSN configurada.
func ConnectDataBase(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.WithError(err).Error("falha ao conectar no banco")
		return nil, err
	}

	return database, nil
}
