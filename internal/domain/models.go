package domain

// Lesson is a catalog entry. Lessons are created only by the startup
// seeding routine and are never updated or deleted by this service.
type Lesson struct {
	ID       string  `db:"id" json:"id"`
	Topic    string  `db:"topic" json:"topic"`
	Location string  `db:"location" json:"location"`
	Price    float64 `db:"price" json:"price"`
	Spaces   int     `db:"spaces" json:"spaces"`
}
