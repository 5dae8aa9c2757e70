package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/misterclayt0n/dandelion/internal/models"
)

// Source supplies the workout snapshot the progression core evaluates and
// records new workouts into it.
type Source interface {
	Snapshot(ctx context.Context) (models.WorkoutData, error)
	Record(ctx context.Context, data models.WorkoutData, notes string) error
}

type Storage struct {
	DB *sql.DB
}

var remoteSchemes = []string{"libsql://", "https://", "http://", "wss://", "ws://"}

// driverFor picks the Turso client for remote URLs and the embedded sqlite
// driver for everything else (file: URLs, plain paths, :memory:).
func driverFor(connString, authToken string) (string, string) {
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(connString, scheme) {
			if authToken == "" {
				return "libsql", connString
			}
			sep := "?"
			if strings.Contains(connString, "?") {
				sep = "&"
			}
			return "libsql", connString + sep + "authToken=" + url.QueryEscape(authToken)
		}
	}
	return "sqlite", connString
}

func NewStorage(ctx context.Context, connString, authToken string) (*Storage, error) {
	driver, dsn := driverFor(connString, authToken)
	logrus.WithField("driver", driver).Debug("opening workout database")

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if driver == "sqlite" {
		// A :memory: database lives and dies with its connection.
		db.SetMaxOpenConns(1)
	}

	if err := InitializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            situps INTEGER NOT NULL DEFAULT 0,
            pushups REAL NOT NULL DEFAULT 0,
            run_distance REAL NOT NULL DEFAULT 0,
            notes TEXT,
            recorded_at TEXT NOT NULL
        );
    `)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_workouts_recorded_at ON workouts (recorded_at);`)
	return err
}
