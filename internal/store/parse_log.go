package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// ParseLogEntry is one recorded invocation.
type ParseLogEntry struct {
	ID         int64            `json:"id"`
	Filename   string           `json:"filename"`
	SourceType model.SourceType `json:"source_type,omitempty"`
	Status     string           `json:"status"`
	ErrorKind  string           `json:"error_kind,omitempty"`
	TotalRows  int              `json:"total_rows"`
	Confidence model.Confidence `json:"confidence,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// LogSuccess records a successful parse with its full result payload.
func (s *Store) LogSuccess(result *model.ParseResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode result: %w", err)
	}
	res, err := s.db.Exec(`
		INSERT INTO parse_logs (filename, source_type, status, total_rows, confidence, result_json)
		VALUES (?, ?, 'ok', ?, ?, ?)
	`, result.Filename, string(result.SourceType), result.TotalRows, string(result.Confidence), string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create parse log: %w", err)
	}
	return res.LastInsertId()
}

// LogFailure records a failed parse by its error kind.
func (s *Store) LogFailure(filename string, perr *model.ParseError) error {
	_, err := s.db.Exec(`
		INSERT INTO parse_logs (filename, status, error_kind)
		VALUES (?, 'error', ?)
	`, filename, string(perr.Kind))
	if err != nil {
		return fmt.Errorf("failed to create parse log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries, most recent first.
func (s *Store) ListRecent(limit int) ([]ParseLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, source_type, status, error_kind, total_rows, confidence, created_at
		FROM parse_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query parse logs: %w", err)
	}
	defer rows.Close()

	entries := []ParseLogEntry{}
	for rows.Next() {
		var e ParseLogEntry
		var sourceType, errorKind, confidence string
		if err := rows.Scan(&e.ID, &e.Filename, &sourceType, &e.Status, &errorKind, &e.TotalRows, &confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan parse log: %w", err)
		}
		e.SourceType = model.SourceType(sourceType)
		e.ErrorKind = errorKind
		e.Confidence = model.Confidence(confidence)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetResult loads the stored ParseResult of a successful entry.
func (s *Store) GetResult(id int64) (*model.ParseResult, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT result_json FROM parse_logs WHERE id = ? AND status = 'ok'
	`, id).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to load parse log %d: %w", id, err)
	}
	var result model.ParseResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}
