package db

import (
	"database/sql"
	"embed"
	"errors"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

const (
	// one match per process; the pool only serves the analytics writes
	maxOpenConns = 4
	maxIdleConns = 2
	connMaxLife  = time.Minute * 15

	databaseName = "battleship"
)

//go:embed migration/*.sql
var migrations embed.FS

func Migrate(db *sql.DB, logger *log.Logger) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: databaseName,
	})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations, "migration")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Println("database has no migration yet")
	case err != nil:
		return err
	case dirty:
		return errors.New("database is dirty")
	default:
		logger.Println("migration version:", version)
	}

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	logger.Println("migration successful...")
	return nil
}

// Connect opens the pool, pings it and brings the schema up to date.
func Connect(psqlUrl string, logger *log.Logger) (*sql.DB, error) {
	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	if err := Migrate(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
