package sqlc

import (
	"context"
	"database/sql"
	"net"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	db      *sql.DB
	queries *Queries
}

func NewAnalyticsManager(db *sql.DB) *AnalyticsManager {
	return &AnalyticsManager{db: db, queries: New(db)}
}

func (a *AnalyticsManager) IncrementMatchesPlayedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesPlayedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementMatchesDrawnCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesDrawnCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchesPlayedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetMatchesPlayedCount(ctx, serverIpNet)
}

// RecordMatch bumps the counters of the host the match ran on and stores
// the outcome row in one transaction. Matches that did not finish are
// ignored.
func (a *AnalyticsManager) RecordMatch(ctx context.Context, serverIpNet net.IPNet, res mb.Result) error {
	if res.State != mb.GameStateWon && res.State != mb.GameStateDrawn {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// no-op once the transaction is committed
	defer func() { _ = tx.Rollback() }()

	if err := recordMatchTx(ctx, a.queries.WithTx(tx), pqtype.Inet{IPNet: serverIpNet, Valid: true}, res); err != nil {
		return err
	}
	return tx.Commit()
}

func recordMatchTx(ctx context.Context, q Querier, inet pqtype.Inet, res mb.Result) error {
	if err := q.AnalyticsIncrementMatchesPlayedCount(ctx, inet); err != nil {
		return err
	}
	if res.State == mb.GameStateDrawn {
		if err := q.AnalyticsIncrementMatchesDrawnCount(ctx, inet); err != nil {
			return err
		}
	}

	return q.InsertMatchResult(ctx, InsertMatchResultParams{
		GameUuid: res.GameUuid,
		Outcome:  res.State.String(),
		Winner:   sql.NullString{String: res.Winner, Valid: res.Winner != ""},
		Rounds:   int32(res.Rounds),
		Shots:    int32(res.Shots),
		ServerIp: inet,
	})
}
