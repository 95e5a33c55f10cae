package sqlite

// Schema DDL for the todos table. Timestamps are integer epoch seconds;
// the defaults mirror what the application binds explicitly on insert, so
// rows created outside the application still get sane values.
const schemaSQL = `CREATE TABLE IF NOT EXISTS todos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
    updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);`
