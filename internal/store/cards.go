package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avelar/lingo/internal/srs"
)

const cardColumns = `id, word, meaning, tags, ease_factor, interval, repetitions,
	next_review, last_reviewed, total_reviews, correct_count, incorrect_count,
	average_response_ms`

// InsertCard adds a new card to the deck.
func (s *Store) InsertCard(card srs.Card) error {
	tags, err := encodeTags(card.Tags)
	if err != nil {
		return fmt.Errorf("encode tags for card %s: %w", card.ID, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		card.ID,
		card.Word,
		card.Meaning,
		tags,
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		nullTime(card.NextReview),
		nullTime(card.LastReviewed),
		card.TotalReviews,
		card.CorrectCount,
		card.IncorrectCount,
		card.AverageResponseMs,
	)
	if err != nil {
		return fmt.Errorf("insert card %q: %w", card.Word, err)
	}
	return nil
}

// GetCard returns the card with the given id, or nil if the deck has none.
func (s *Store) GetCard(id string) (*srs.Card, error) {
	row := s.db.QueryRow(`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	return scanOptionalCard(row, fmt.Sprintf("get card %s", id))
}

// FindByWord returns the card for a word, or nil if the deck has none.
func (s *Store) FindByWord(word string) (*srs.Card, error) {
	row := s.db.QueryRow(`SELECT `+cardColumns+` FROM cards WHERE word = ?`, word)
	return scanOptionalCard(row, fmt.Sprintf("find card by word %q", word))
}

// ListCards returns the whole deck ordered by word.
func (s *Store) ListCards() ([]srs.Card, error) {
	rows, err := s.db.Query(`SELECT ` + cardColumns + ` FROM cards ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []srs.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("list cards: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// UpdateCard writes the card's scheduling state and counters back to the deck.
func (s *Store) UpdateCard(card srs.Card) error {
	tags, err := encodeTags(card.Tags)
	if err != nil {
		return fmt.Errorf("encode tags for card %s: %w", card.ID, err)
	}
	_, err = s.db.Exec(`
		UPDATE cards
		SET word = ?, meaning = ?, tags = ?, ease_factor = ?, interval = ?,
		    repetitions = ?, next_review = ?, last_reviewed = ?,
		    total_reviews = ?, correct_count = ?, incorrect_count = ?,
		    average_response_ms = ?
		WHERE id = ?
	`,
		card.Word,
		card.Meaning,
		tags,
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		nullTime(card.NextReview),
		nullTime(card.LastReviewed),
		card.TotalReviews,
		card.CorrectCount,
		card.IncorrectCount,
		card.AverageResponseMs,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("update card %s: %w", card.ID, err)
	}
	return nil
}

// DeleteCard removes a card and its review history from the deck. Both
// deletes happen in one transaction so the history never outlives the card.
func (s *Store) DeleteCard(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete card %s: begin: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reviews WHERE card_id = ?`, id); err != nil {
		return fmt.Errorf("delete reviews for card %s: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM cards WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete card %s: commit: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (srs.Card, error) {
	var c srs.Card
	var tags string
	var next, last sql.NullTime
	err := row.Scan(
		&c.ID,
		&c.Word,
		&c.Meaning,
		&tags,
		&c.EaseFactor,
		&c.Interval,
		&c.Repetitions,
		&next,
		&last,
		&c.TotalReviews,
		&c.CorrectCount,
		&c.IncorrectCount,
		&c.AverageResponseMs,
	)
	if err != nil {
		return srs.Card{}, err
	}
	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		return srs.Card{}, fmt.Errorf("decode tags: %w", err)
	}
	if next.Valid {
		t := next.Time
		c.NextReview = &t
	}
	if last.Valid {
		t := last.Time
		c.LastReviewed = &t
	}
	return c.Normalize(), nil
}

func scanOptionalCard(row rowScanner, op string) (*srs.Card, error) {
	c, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
