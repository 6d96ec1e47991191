package bootstrap

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func InitDB() {
	logLevel := logger.Silent
	if conf.Debug {
		logLevel = logger.Info
	}
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: conf.Conf.Database.TablePrefix,
		},
		Logger: logger.Default.LogMode(logLevel),
	}
	var dB *gorm.DB
	var err error
	database := conf.Conf.Database
	switch database.Type {
	case "sqlite3":
		if database.DBFile == "" {
			log.Fatalf("db file is required for sqlite3")
		}
		dB, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_journal=WAL&_vacuum=incremental", database.DBFile)), gormConfig)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			database.User, database.Password, database.Host, database.Port, database.Name)
		dB, err = gorm.Open(mysql.Open(dsn), gormConfig)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			database.Host, database.User, database.Password, database.Name, database.Port, database.SSLMode)
		dB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		log.Fatalf("not supported database type: %s", database.Type)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %s", err.Error())
	}
	if database.Type != "sqlite3" && conf.Conf.MaxConnections > 0 {
		sqlDB, err := dB.DB()
		if err != nil {
			log.Fatalf("failed to get underlying db: %s", err.Error())
		}
		sqlDB.SetMaxOpenConns(conf.Conf.MaxConnections)
	}
	db.Init(dB)
}
