package database

import (
	"fmt"
	"log"

	"buget/config"
	"buget/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection and migrates the schema.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("conectarea la baza de date a esuat: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Venit{},
		&models.CheltuialaFixa{},
		&models.CheltuialaVariabila{},
		&models.EconomieVacanta{},
		&models.EconomieLunara{},
		&models.Fond{},
		&models.MiscareFond{},
		&models.UserBridge{},
	); err != nil {
		return err
	}

	log.Println("baza de date initializata")
	return nil
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return DB
}
