package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID          string         `db:"id"`
	Body        string         `db:"body"`
	LessonTopic sql.NullString `db:"lesson_topic"`
	Quantity    sql.NullInt64  `db:"quantity"`
	CreatedAt   string         `db:"created_at"`
}

// Create inserts one order. The body is stored verbatim; topic and qty are
// informational extracts and may be empty/zero when the body omits them.
func (r *OrderRepo) Create(id, body, topic string, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO orders(id, body, lesson_topic, quantity, created_at)
		VALUES(?, ?, NULLIF(?, ''), NULLIF(?, 0), CURRENT_TIMESTAMP)
	`, id, body, topic, qty)
	return err
}

func (r *OrderRepo) List() ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, body, lesson_topic, quantity, created_at
		FROM orders
		ORDER BY datetime(created_at), id
	`)
	return out, err
}
