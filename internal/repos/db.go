package repos

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"classplus/internal/domain"
)

// OpenDB opens the backing store, verifies the connection and applies the
// schema. Any error here is fatal to the caller: the service never serves
// requests without a working store.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Lessons catalog
CREATE TABLE IF NOT EXISTS lessons(
  id TEXT PRIMARY KEY,
  topic TEXT NOT NULL,
  location TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  spaces INTEGER NOT NULL CHECK (spaces >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_lessons_topic ON lessons(LOWER(topic));

-- Orders: body holds the submitted JSON verbatim; lesson_topic and
-- quantity are extracted copies for listing/audit, not foreign keys.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  lesson_topic TEXT,
  quantity INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// defaultLessons is the fixed catalog inserted into an empty store.
var defaultLessons = []domain.Lesson{
	{Topic: "Mathematics", Location: "New York", Price: 100, Spaces: 5},
	{Topic: "English", Location: "Los Angeles", Price: 90, Spaces: 5},
	{Topic: "Physics", Location: "Chicago", Price: 120, Spaces: 5},
	{Topic: "Chemistry", Location: "Houston", Price: 110, Spaces: 5},
	{Topic: "Biology", Location: "Miami", Price: 105, Spaces: 5},
	{Topic: "Psychology", Location: "San Francisco", Price: 95, Spaces: 5},
	{Topic: "History", Location: "Boston", Price: 85, Spaces: 5},
	{Topic: "Music", Location: "Seattle", Price: 80, Spaces: 5},
	{Topic: "Geography", Location: "Denver", Price: 75, Spaces: 5},
	{Topic: "Finance", Location: "Atlanta", Price: 130, Spaces: 5},
}

// EnsureLessonsExist seeds the default catalog when the lessons table is
// empty. The count gate makes a second run in the same process a no-op;
// there is no cross-process exclusivity.
func EnsureLessonsExist(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM lessons`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting default lessons catalog")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, l := range defaultLessons {
		if _, err := tx.Exec(`
			INSERT INTO lessons(id, topic, location, price, spaces)
			VALUES(?, ?, ?, ?, ?)
		`, uuid.NewString(), l.Topic, l.Location, l.Price, l.Spaces); err != nil {
			return err
		}
	}

	return tx.Commit()
}
