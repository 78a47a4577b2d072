package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tylersatter13/EventBookingSystem-sub000/internal/platform/logger"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c Config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Connect opens the database and waits for it to come up, retrying for a
// while so the service survives starting before its database does.
func Connect(cfg Config, log *logger.Logger) (*sql.DB, error) {
	const maxAttempts = 10

	var db *sql.DB
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Info("DATABASE", fmt.Sprintf("connecting (attempt %d/%d)", attempt, maxAttempts))
		db, err = sql.Open("postgres", cfg.dsn())
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			log.Info("DATABASE", "connected")
			return db, nil
		}
		log.Warn("DATABASE", "not ready yet, retrying in 2s")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxAttempts, err)
}
