package repos

import (
	"classplus/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LessonRepo struct{ db *sqlx.DB }

func NewLessonRepo(db *sqlx.DB) *LessonRepo { return &LessonRepo{db: db} }

func (r *LessonRepo) List() ([]domain.Lesson, error) {
	var out []domain.Lesson
	err := r.db.Select(&out, `
		SELECT id, topic, location, price, spaces
		FROM lessons
		ORDER BY created_at, topic
	`)
	return out, err
}

func (r *LessonRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM lessons`)
	return n, err
}

// GetByTopic returns the first lesson matching a topic. Topics carry no
// uniqueness constraint; callers use this for informational lookups only.
func (r *LessonRepo) GetByTopic(topic string) (domain.Lesson, error) {
	var l domain.Lesson
	err := r.db.Get(&l, `
		SELECT id, topic, location, price, spaces
		FROM lessons
		WHERE topic = ?
		LIMIT 1
	`, topic)
	return l, err
}
