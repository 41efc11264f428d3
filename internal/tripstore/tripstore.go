// Package tripstore persists saved trips, assistant history, classified
// intents, environment snapshots and SOS events in SQLite.
package tripstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"margdarshak.in/internal/clock"
)

const schema = `
CREATE TABLE IF NOT EXISTS saved_trips (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    origin_label  TEXT NOT NULL,
    origin_lat    REAL NOT NULL,
    origin_lng    REAL NOT NULL,
    dest_label    TEXT NOT NULL,
    dest_lat      REAL NOT NULL,
    dest_lng      REAL NOT NULL,
    best_mode     TEXT NOT NULL,
    fare_amount   INTEGER NOT NULL,
    duration_sec  INTEGER NOT NULL,
    distance_km   REAL NOT NULL,
    created_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ai_history (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    role       TEXT NOT NULL,
    content    TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ai_history_session ON ai_history(session_id, id);

CREATE TABLE IF NOT EXISTS intents (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    message    TEXT NOT NULL,
    intent     TEXT NOT NULL,
    confidence REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS environment_logs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    lat              REAL NOT NULL,
    lng              REAL NOT NULL,
    temperature      REAL,
    aqi              INTEGER,
    rain_probability INTEGER,
    weather_label    TEXT,
    created_at       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sos_logs (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    lat        REAL NOT NULL,
    lng        REAL NOT NULL,
    message    TEXT,
    contact    TEXT,
    created_at INTEGER NOT NULL
);
`

// SavedTrip is a persisted route comparison the user chose to keep.
type SavedTrip struct {
	ID          int64   `json:"id"`
	OriginLabel string  `json:"originLabel"`
	OriginLat   float64 `json:"originLat"`
	OriginLng   float64 `json:"originLng"`
	DestLabel   string  `json:"destLabel"`
	DestLat     float64 `json:"destLat"`
	DestLng     float64 `json:"destLng"`
	BestMode    string  `json:"bestMode"`
	FareAmount  int     `json:"fareAmount"`
	DurationSec int     `json:"durationSec"`
	DistanceKm  float64 `json:"distanceKm"`
	CreatedAt   int64   `json:"createdAt"`
}

// HistoryEntry is one stored assistant conversation turn.
type HistoryEntry struct {
	ID        int64  `json:"id"`
	SessionID string `json:"sessionId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// IntentRecord is a stored intent classification result.
type IntentRecord struct {
	ID         int64   `json:"id"`
	SessionID  string  `json:"sessionId"`
	Message    string  `json:"message"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	CreatedAt  int64   `json:"createdAt"`
}

// EnvironmentLog is a stored weather and air quality snapshot.
type EnvironmentLog struct {
	ID              int64   `json:"id"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Temperature     float64 `json:"temperature"`
	AQI             int     `json:"aqi"`
	RainProbability int     `json:"rainProbability"`
	WeatherLabel    string  `json:"weatherLabel"`
	CreatedAt       int64   `json:"createdAt"`
}

// SOSEvent is a stored emergency alert.
type SOSEvent struct {
	ID        int64   `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Message   string  `json:"message"`
	Contact   string  `json:"contact"`
	CreatedAt int64   `json:"createdAt"`
}

// Store wraps the SQLite database.
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

// Open opens or creates the database at path and applies the schema. Use
// ":memory:" for tests.
func Open(path string, c clock.Clock) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("tripstore: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tripstore: apply schema: %w", err)
	}
	return &Store{db: db, clock: c}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DB exposes the underlying handle for connection pool metrics.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveTrip persists a trip and returns it with its assigned ID.
func (s *Store) SaveTrip(ctx context.Context, trip SavedTrip) (SavedTrip, error) {
	trip.CreatedAt = s.clock.NowUnixMilli()
	res, err := s.db.ExecContext(ctx, `
INSERT INTO saved_trips (
    origin_label, origin_lat, origin_lng, dest_label, dest_lat, dest_lng,
    best_mode, fare_amount, duration_sec, distance_km, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.OriginLabel, trip.OriginLat, trip.OriginLng,
		trip.DestLabel, trip.DestLat, trip.DestLng,
		trip.BestMode, trip.FareAmount, trip.DurationSec, trip.DistanceKm, trip.CreatedAt)
	if err != nil {
		return SavedTrip{}, fmt.Errorf("tripstore: save trip: %w", err)
	}
	trip.ID, err = res.LastInsertId()
	if err != nil {
		return SavedTrip{}, fmt.Errorf("tripstore: save trip id: %w", err)
	}
	return trip, nil
}

// ListSavedTrips returns saved trips newest first.
func (s *Store) ListSavedTrips(ctx context.Context, limit int) ([]SavedTrip, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, origin_label, origin_lat, origin_lng, dest_label, dest_lat, dest_lng,
       best_mode, fare_amount, duration_sec, distance_km, created_at
FROM saved_trips ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("tripstore: list trips: %w", err)
	}
	defer rows.Close()

	var trips []SavedTrip
	for rows.Next() {
		var t SavedTrip
		if err := rows.Scan(&t.ID, &t.OriginLabel, &t.OriginLat, &t.OriginLng,
			&t.DestLabel, &t.DestLat, &t.DestLng,
			&t.BestMode, &t.FareAmount, &t.DurationSec, &t.DistanceKm, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("tripstore: scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// DeleteSavedTrip removes a trip by ID. Returns sql.ErrNoRows when the trip
// does not exist.
func (s *Store) DeleteSavedTrip(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saved_trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("tripstore: delete trip %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tripstore: delete trip %d: %w", id, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SaveAIHistory appends a conversation turn to a session.
func (s *Store) SaveAIHistory(ctx context.Context, sessionID, role, content string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO ai_history (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, role, content, s.clock.NowUnixMilli())
	if err != nil {
		return fmt.Errorf("tripstore: save history: %w", err)
	}
	return nil
}

// GetAIHistory returns a session's turns oldest first.
func (s *Store) GetAIHistory(ctx context.Context, sessionID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, session_id, role, content, created_at
FROM ai_history WHERE session_id = ? ORDER BY id ASC LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("tripstore: get history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.ID, &h.SessionID, &h.Role, &h.Content, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("tripstore: scan history: %w", err)
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}

// SaveIntent records a classification result.
func (s *Store) SaveIntent(ctx context.Context, sessionID, message, intent string, confidence float64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO intents (session_id, message, intent, confidence, created_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, message, intent, confidence, s.clock.NowUnixMilli())
	if err != nil {
		return fmt.Errorf("tripstore: save intent: %w", err)
	}
	return nil
}

// ListIntents returns recorded intents newest first.
func (s *Store) ListIntents(ctx context.Context, limit int) ([]IntentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, session_id, message, intent, confidence, created_at
FROM intents ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("tripstore: list intents: %w", err)
	}
	defer rows.Close()

	var records []IntentRecord
	for rows.Next() {
		var r IntentRecord
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Message, &r.Intent, &r.Confidence, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("tripstore: scan intent: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveEnvironmentLog records a weather and AQI snapshot.
func (s *Store) SaveEnvironmentLog(ctx context.Context, log EnvironmentLog) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO environment_logs (lat, lng, temperature, aqi, rain_probability, weather_label, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.Lat, log.Lng, log.Temperature, log.AQI, log.RainProbability, log.WeatherLabel,
		s.clock.NowUnixMilli())
	if err != nil {
		return fmt.Errorf("tripstore: save environment log: %w", err)
	}
	return nil
}

// LogSOS records an emergency alert and returns it with its assigned ID.
func (s *Store) LogSOS(ctx context.Context, event SOSEvent) (SOSEvent, error) {
	event.CreatedAt = s.clock.NowUnixMilli()
	res, err := s.db.ExecContext(ctx, `
INSERT INTO sos_logs (lat, lng, message, contact, created_at) VALUES (?, ?, ?, ?, ?)`,
		event.Lat, event.Lng, event.Message, event.Contact, event.CreatedAt)
	if err != nil {
		return SOSEvent{}, fmt.Errorf("tripstore: log sos: %w", err)
	}
	event.ID, err = res.LastInsertId()
	if err != nil {
		return SOSEvent{}, fmt.Errorf("tripstore: log sos id: %w", err)
	}
	return event, nil
}
