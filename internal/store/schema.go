package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL,
    name          TEXT NOT NULL,
    default_wage  REAL NOT NULL DEFAULT 0,
    wage_type     TEXT NOT NULL DEFAULT 'hourly',
    currency      TEXT NOT NULL DEFAULT 'USD',
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    name          TEXT NOT NULL,
    is_default    INTEGER NOT NULL DEFAULT 0,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id              TEXT PRIMARY KEY,
    user_id         TEXT NOT NULL,
    name            TEXT NOT NULL,
    target_amount   REAL NOT NULL,
    starting_amount REAL NOT NULL,
    weekly_savings  REAL NOT NULL,
    created_at      TEXT NOT NULL,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decisions (
    id                       TEXT PRIMARY KEY,
    user_id                  TEXT NOT NULL,
    name                     TEXT NOT NULL,
    cost                     REAL NOT NULL,
    hourly_wage_used         REAL NOT NULL,
    category_id              TEXT,
    computed_hours           REAL NOT NULL,
    computed_goal_delay_days INTEGER NOT NULL,
    created_at               TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS wishlist (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    name          TEXT NOT NULL,
    cost          REAL NOT NULL,
    category_id   TEXT,
    note          TEXT,
    image_url     TEXT,
    status        TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    purchased_at  TEXT
);

CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);
CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
CREATE INDEX IF NOT EXISTS idx_decisions_user ON decisions(user_id);
CREATE INDEX IF NOT EXISTS idx_decisions_created ON decisions(created_at);
CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist(user_id);
CREATE INDEX IF NOT EXISTS idx_wishlist_status ON wishlist(status);
`
