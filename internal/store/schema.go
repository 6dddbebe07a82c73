package store

const schema = `
-- The 'cards' table holds one row per learnable item with its scheduling state.
CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    word TEXT NOT NULL UNIQUE,
    meaning TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    ease_factor REAL NOT NULL,
    interval INTEGER NOT NULL,
    repetitions INTEGER NOT NULL DEFAULT 0,
    next_review DATETIME,
    last_reviewed DATETIME,
    total_reviews INTEGER NOT NULL DEFAULT 0,
    correct_count INTEGER NOT NULL DEFAULT 0,
    incorrect_count INTEGER NOT NULL DEFAULT 0,
    average_response_ms REAL NOT NULL DEFAULT 0
);

-- The 'reviews' table is an append-only log of review outcomes.
CREATE TABLE IF NOT EXISTS reviews (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    card_id TEXT NOT NULL,
    quality INTEGER NOT NULL,
    response_ms INTEGER NOT NULL,
    action TEXT NOT NULL,
    reviewed_at DATETIME NOT NULL,

    FOREIGN KEY(card_id) REFERENCES cards(id)
);

CREATE INDEX IF NOT EXISTS idx_reviews_card ON reviews(card_id);
`
