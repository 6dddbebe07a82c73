package store

import (
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/srs"
)

// AppendReview records one review outcome in the append-only log.
func (s *Store) AppendReview(cardID string, quality srs.Quality, responseMs int64, action srs.Action, reviewedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO reviews (card_id, quality, response_ms, action, reviewed_at)
		VALUES (?, ?, ?, ?, ?)
	`, cardID, int(quality), responseMs, string(action), reviewedAt)
	if err != nil {
		return fmt.Errorf("append review for card %s: %w", cardID, err)
	}
	return nil
}

// RecentAccuracy returns the passing ratio over the most recent n reviews
// across the whole deck, and how many reviews that covered. With no reviews
// it returns (0, 0).
func (s *Store) RecentAccuracy(n int) (float64, int, error) {
	rows, err := s.db.Query(`
		SELECT quality FROM reviews ORDER BY id DESC LIMIT ?
	`, n)
	if err != nil {
		return 0, 0, fmt.Errorf("query recent reviews: %w", err)
	}
	defer rows.Close()

	var total, passed int
	for rows.Next() {
		var q int
		if err := rows.Scan(&q); err != nil {
			return 0, 0, fmt.Errorf("scan recent review: %w", err)
		}
		total++
		if srs.Quality(q).Passing() {
			passed++
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("query recent reviews: %w", err)
	}

	if total == 0 {
		return 0, 0, nil
	}
	return float64(passed) / float64(total), total, nil
}

// ReviewCount returns the total number of logged reviews.
func (s *Store) ReviewCount() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}
