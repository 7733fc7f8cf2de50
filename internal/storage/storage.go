package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/Rhysnute92/fitlog/internal/config"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the database. The TURSO_DATABASE_URL environment variable
// (via .env if present) wins over the config file, so a hosted db and a
// DEV_MODE local file can coexist without editing config.toml.
func NewStorage(cfg *config.Config) (*Storage, error) {
	godotenv.Load()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		url = cfg.DB.ConnectionString
	}
	if url == "" {
		return nil, fmt.Errorf("no database configured: set TURSO_DATABASE_URL or database.connection_string")
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS food_entries (
            id TEXT PRIMARY KEY,
            day TEXT NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            calories REAL NOT NULL,
            protein REAL NOT NULL,
            carbs REAL NOT NULL,
            fat REAL NOT NULL,
            logged_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_sets (
            id TEXT PRIMARY KEY,
            day TEXT NOT NULL,
            position INTEGER NOT NULL,
            exercise TEXT NOT NULL,
            sets INTEGER NOT NULL,
            reps INTEGER NOT NULL,
            weight REAL NOT NULL,
            one_rep_max REAL NOT NULL,
            logged_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS trackers (
            name TEXT PRIMARY KEY,
            unit TEXT,
            step REAL NOT NULL,
            goal REAL
        );

        CREATE TABLE IF NOT EXISTS tracker_entries (
            tracker TEXT NOT NULL,
            day TEXT NOT NULL,
            amount REAL NOT NULL,
            PRIMARY KEY (tracker, day),
            FOREIGN KEY (tracker) REFERENCES trackers(name) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS weight_history (
            position INTEGER PRIMARY KEY AUTOINCREMENT,
            day TEXT NOT NULL,
            weight REAL NOT NULL
        );

        CREATE TABLE IF NOT EXISTS goals (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            rest_calories REAL NOT NULL,
            train_calories REAL NOT NULL,
            protein REAL NOT NULL,
            carbs REAL NOT NULL,
            fat REAL NOT NULL,
            target_weight REAL NOT NULL
        );

        CREATE TABLE IF NOT EXISTS snapshots (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}
