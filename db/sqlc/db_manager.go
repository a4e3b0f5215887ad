package sqlc

import (
	"database/sql"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	db        *sql.DB
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) DbManager {
	return DbManager{
		db:        db,
		Analytics: NewAnalyticsManager(db),
	}
}

func (dm DbManager) Close() error {
	return dm.db.Close()
}
