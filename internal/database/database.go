package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"blogapi/internal/config"
	"blogapi/pkg/logger"
)

// Open bağlantı havuzunu bir kez kurar; repositoryler bu paylaşılan
// tanıtıcıyı kurulum sırasında alır, global erişim yoktur.
func Open(cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	log.Info("Veritabanı bağlantısı başarılı", map[string]interface{}{})

	return db, nil
}
