package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	agentDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/agent"
	historyDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/history"
	loanDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/loan"
	requestDomain "github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can inject a mocked *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the workflow tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&requestDomain.LoanRequest{},
		&requestDomain.EMIInstallment{},
		&historyDomain.Entry{},
		&agentDomain.Agent{},
		&loanDomain.Loan{},
	)
}
