package repos_test

import (
	"testing"

	"classplus/internal/domain"
	"classplus/internal/repos"
)

func TestEnsureLessonsExistSeedsFixedCatalog(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repos.EnsureLessonsExist(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	lessonRepo := repos.NewLessonRepo(db)
	lessons, err := lessonRepo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != 10 {
		t.Fatalf("expected 10 seeded lessons, got %d", len(lessons))
	}

	want := map[string]domain.Lesson{
		"Mathematics": {Topic: "Mathematics", Location: "New York", Price: 100, Spaces: 5},
		"English":     {Topic: "English", Location: "Los Angeles", Price: 90, Spaces: 5},
		"Physics":     {Topic: "Physics", Location: "Chicago", Price: 120, Spaces: 5},
		"Chemistry":   {Topic: "Chemistry", Location: "Houston", Price: 110, Spaces: 5},
		"Biology":     {Topic: "Biology", Location: "Miami", Price: 105, Spaces: 5},
		"Psychology":  {Topic: "Psychology", Location: "San Francisco", Price: 95, Spaces: 5},
		"History":     {Topic: "History", Location: "Boston", Price: 85, Spaces: 5},
		"Music":       {Topic: "Music", Location: "Seattle", Price: 80, Spaces: 5},
		"Geography":   {Topic: "Geography", Location: "Denver", Price: 75, Spaces: 5},
		"Finance":     {Topic: "Finance", Location: "Atlanta", Price: 130, Spaces: 5},
	}
	for _, got := range lessons {
		w, ok := want[got.Topic]
		if !ok {
			t.Fatalf("unexpected topic %q", got.Topic)
		}
		if got.ID == "" {
			t.Fatalf("lesson %q has no assigned id", got.Topic)
		}
		if got.Location != w.Location || got.Price != w.Price || got.Spaces != w.Spaces {
			t.Fatalf("lesson %q = %+v, want %+v", got.Topic, got, w)
		}
		delete(want, got.Topic)
	}
	if len(want) != 0 {
		t.Fatalf("missing seeded topics: %v", want)
	}
}

func TestEnsureLessonsExistIsIdempotent(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := repos.EnsureLessonsExist(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}
	n, err := repos.NewLessonRepo(db).Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 10 {
		t.Fatalf("expected count gate to hold at 10 lessons, got %d", n)
	}
}

func TestOpenDBFailsOnUnreachablePath(t *testing.T) {
	if _, err := repos.OpenDB("/no/such/dir/classplus.db"); err == nil {
		t.Fatal("expected error opening store in a missing directory")
	}
}
