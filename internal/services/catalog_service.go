package services

import (
	"classplus/internal/domain"
	"classplus/internal/repos"
)

type CatalogService struct {
	Lessons *repos.LessonRepo
}

func NewCatalogService(lessons *repos.LessonRepo) *CatalogService {
	return &CatalogService{Lessons: lessons}
}

func (s *CatalogService) ListLessons() ([]domain.Lesson, error) {
	out, err := s.Lessons.List()
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Lesson{}
	}
	return out, nil
}
