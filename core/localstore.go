package core

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cinedesk/v2/internal/types"
)

// LocalStore is the client's small persistent key-value store, the
// desktop stand-in for the browser's localStorage. It currently holds
// the session token and the last user snapshot.
type LocalStore struct {
	dbFile string
	conn   *sql.DB
}

// NewLocalStore creates a store inside dataDir. Connect must be called
// before use.
func NewLocalStore(dataDir, dbFile string) *LocalStore {
	if dbFile == "" {
		dbFile = "cinedesk.db"
	}
	return &LocalStore{
		dbFile: filepath.Join(dataDir, dbFile),
	}
}

// Connect opens the database and creates the schema if needed.
func (s *LocalStore) Connect() error {
	conn, err := sql.Open("sqlite3", s.dbFile)
	if err != nil {
		return fmt.Errorf("failed to connect to local store: %w", err)
	}
	s.conn = conn

	query := `
    CREATE TABLE IF NOT EXISTS session (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	if _, err := s.conn.Exec(query); err != nil {
		return fmt.Errorf("failed to initialize local store: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *LocalStore) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

const (
	keyToken = "token"
	keyUser  = "user"
)

// SaveSession persists the token and user snapshot.
func (s *LocalStore) SaveSession(token string, user types.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	if err := s.set(keyToken, token); err != nil {
		return err
	}
	return s.set(keyUser, string(userJSON))
}

// LoadSession returns the persisted token and user snapshot. A missing
// session yields "" and nil with no error.
func (s *LocalStore) LoadSession() (string, *types.User, error) {
	token, err := s.get(keyToken)
	if err != nil {
		return "", nil, err
	}
	if token == "" {
		return "", nil, nil
	}

	userJSON, err := s.get(keyUser)
	if err != nil {
		return "", nil, err
	}
	var user *types.User
	if userJSON != "" {
		user = &types.User{}
		if err := json.Unmarshal([]byte(userJSON), user); err != nil {
			// A corrupt snapshot is not fatal; the profile page can
			// re-fetch the user with the token.
			user = nil
		}
	}
	return token, user, nil
}

// ClearSession removes every persisted session value.
func (s *LocalStore) ClearSession() error {
	if _, err := s.conn.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *LocalStore) set(key, value string) error {
	query := "INSERT OR REPLACE INTO session (key, value) VALUES (?, ?)"
	if _, err := s.conn.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) get(key string) (string, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}
