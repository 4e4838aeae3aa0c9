package config

import (
	"fmt"
	"log"
	"time"

	"complaint-intake-backend/db/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// migrationOrder lists every model in foreign-key-safe order: each table is
// created before any table that references it, so a migration never leaves a
// foreign key dangling.
var migrationOrder = []interface{}{
	&models.ComplaintCategory{},
	&models.Complainant{},
	&models.Patient{},
	&models.Case{},
	&models.Complaint{},
}

const (
	dbConnectMaxRetries    = 10
	dbConnectRetryInterval = 2 * time.Second
)

// ConfigureDatabase opens the Postgres connection, waits for the database to
// come up, runs migrations and configures the connection pool.
func ConfigureDatabase(cfg *AppConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[DB-POOL] Failed to get underlying DB connection: %v", err)
	}

	// The database container may still be starting; retry before giving up.
	for attempt := 1; ; attempt++ {
		if err = sqlDB.Ping(); err == nil {
			log.Println("[DB-CONNECT] Database connection successful")
			break
		}
		if attempt == dbConnectMaxRetries {
			log.Fatalf("[DB-CONNECT] Database unreachable after %d attempts: %v", attempt, err)
		}
		log.Printf("[DB-CONNECT] Attempt %d/%d failed: %v", attempt, dbConnectMaxRetries, err)
		time.Sleep(dbConnectRetryInterval)
	}

	if err := MigrateModels(db); err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	}
	log.Println("Tables migrated successfully")

	// Connection pool configuration
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	log.Println("[DB-POOL] Connection pool configured")
	log.Println("[DB-STATUS] Database setup complete")
	return db
}

// MigrateModels applies the schema in FK-safe order. Exposed separately so
// tests can migrate an in-memory database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(migrationOrder...)
}
