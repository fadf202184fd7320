// Package postgres implements store.Store on a pgx pool.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adpulse/adpulse/internal/domain"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect opens a pool, verifies connectivity and applies the schema.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pg pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg schema: %w", err)
	}
	return New(pool), nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// --- users ---

func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := s.pool.Exec(ctx, sqlInsertUser,
		u.UserID, u.Email, u.Name, u.CreatedAt, u.LastActive, u.IsDemoUser)
	return err
}

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, sqlGetUser, userID).Scan(
		&u.UserID, &u.Email, &u.Name, &u.CreatedAt, &u.LastActive, &u.IsDemoUser)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) TouchUser(ctx context.Context, userID string, at time.Time) error {
	_, err := s.pool.Exec(ctx, sqlTouchUser, userID, at.UTC())
	return err
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (s *Store) CountUsersSince(ctx context.Context, since time.Time) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
}

// --- interactions ---

func (s *Store) AddInteraction(ctx context.Context, e *domain.InteractionEvent) error {
	_, err := s.pool.Exec(ctx, sqlInsertInteraction,
		e.InteractionID, e.UserID, e.SessionID, string(e.EventType),
		e.ContentCategory, e.ContentID, e.Duration, e.Timestamp)
	return err
}

func (s *Store) ListInteractions(ctx context.Context, userID string, limit int) ([]domain.InteractionEvent, error) {
	rows, err := s.pool.Query(ctx, sqlListInteractions, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractions(rows)
}

func (s *Store) RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionEvent, error) {
	rows, err := s.pool.Query(ctx, sqlRecentInteractions, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractions(rows)
}

func (s *Store) CountInteractions(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM interactions`)
}

func (s *Store) CountInteractionsSince(ctx context.Context, since time.Time) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM interactions WHERE ts >= $1`, since)
}

func (s *Store) EventTypeDistribution(ctx context.Context) ([]domain.BucketCount, error) {
	return s.buckets(ctx, `
		SELECT event_type, COUNT(*) FROM interactions
		GROUP BY event_type ORDER BY COUNT(*) DESC, event_type ASC`)
}

func (s *Store) CategoryDistribution(ctx context.Context) ([]domain.BucketCount, error) {
	return s.buckets(ctx, `
		SELECT content_category, COUNT(*) FROM interactions
		GROUP BY content_category ORDER BY COUNT(*) DESC, content_category ASC`)
}

func (s *Store) HourlyPattern(ctx context.Context) ([]domain.BucketCount, error) {
	return s.buckets(ctx, `
		SELECT to_char(ts AT TIME ZONE 'UTC', 'HH24'), COUNT(*) FROM interactions
		GROUP BY 1 ORDER BY 1 ASC`)
}

func (s *Store) DailyInteractions(ctx context.Context, days int) ([]domain.BucketCount, error) {
	return s.buckets(ctx, `
		SELECT to_char(ts AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) FROM interactions
		GROUP BY day ORDER BY day DESC LIMIT $1`, days)
}

// --- predictions ---

func (s *Store) SavePrediction(ctx context.Context, p *domain.InterestPrediction) error {
	scores, err := json.Marshal(p.InterestScores)
	if err != nil {
		return err
	}
	features, err := json.Marshal(p.FeaturesUsed)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, sqlUpsertPrediction,
		p.UserID, p.PrimaryInterest, scores, p.Confidence, features, p.ModelVersion, p.Timestamp)
	return err
}

func (s *Store) GetPrediction(ctx context.Context, userID string) (*domain.InterestPrediction, error) {
	p, err := scanPrediction(s.pool.QueryRow(ctx, sqlGetPrediction, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (s *Store) CountPredictions(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM predictions`)
}

func (s *Store) InterestDistribution(ctx context.Context) ([]domain.BucketCount, error) {
	return s.buckets(ctx, `
		SELECT primary_interest, COUNT(*) FROM predictions
		GROUP BY primary_interest ORDER BY COUNT(*) DESC, primary_interest ASC`)
}

func (s *Store) ConfidenceByInterest(ctx context.Context) ([]domain.ConfidenceBucket, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT primary_interest, AVG(confidence), COUNT(*) FROM predictions
		GROUP BY primary_interest ORDER BY AVG(confidence) DESC, primary_interest ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ConfidenceBucket, 0)
	for rows.Next() {
		var b domain.ConfidenceBucket
		if err := rows.Scan(&b.Key, &b.AvgConfidence, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) RecentPredictions(ctx context.Context, since time.Time, limit int) ([]domain.InterestPrediction, error) {
	rows, err := s.pool.Query(ctx, sqlRecentPredictions, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.InterestPrediction, 0)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// --- scan helpers ---

func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (s *Store) buckets(ctx context.Context, query string, args ...any) ([]domain.BucketCount, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BucketCount, 0)
	for rows.Next() {
		var b domain.BucketCount
		if err := rows.Scan(&b.Key, &b.Count); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanInteractions(rows pgx.Rows) ([]domain.InteractionEvent, error) {
	out := make([]domain.InteractionEvent, 0)
	for rows.Next() {
		var e domain.InteractionEvent
		var eventType string
		if err := rows.Scan(&e.InteractionID, &e.UserID, &e.SessionID, &eventType,
			&e.ContentCategory, &e.ContentID, &e.Duration, &e.Timestamp); err != nil {
			return nil, err
		}
		e.EventType = domain.EventType(eventType)
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanPrediction(row pgx.Row) (*domain.InterestPrediction, error) {
	var p domain.InterestPrediction
	var scores, features []byte
	if err := row.Scan(&p.UserID, &p.PrimaryInterest, &scores, &p.Confidence,
		&features, &p.ModelVersion, &p.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(scores, &p.InterestScores); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &p.FeaturesUsed); err != nil {
		return nil, err
	}
	return &p, nil
}
