package repos_test

import (
	"testing"

	"classplus/internal/repos"
)

func TestOrderRepoCreateAndList(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	r := repos.NewOrderRepo(db)

	if err := r.Create("ord-1", `{"lessonTopic":"Physics","quantity":3}`, "Physics", 3); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Body without the informational fields: topic/qty columns stay NULL.
	if err := r.Create("ord-2", `{"note":"gift"}`, "", 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := r.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(rows))
	}
	if rows[0].ID != "ord-1" || !rows[0].LessonTopic.Valid || rows[0].LessonTopic.String != "Physics" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Quantity.Int64 != 3 {
		t.Fatalf("expected quantity 3, got %+v", rows[0].Quantity)
	}
	if rows[1].LessonTopic.Valid || rows[1].Quantity.Valid {
		t.Fatalf("expected NULL extracts for schemaless body, got %+v", rows[1])
	}
}
