package handlers

import (
	"github.com/jmoiron/sqlx"

	"classplus/internal/repos"
	"classplus/internal/services"
)

type Deps struct {
	LessonHandler *LessonHandler
	OrderHandler  *OrderHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	lessonRepo := repos.NewLessonRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(lessonRepo)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		LessonHandler: &LessonHandler{Catalog: catalogSvc},
		OrderHandler:  &OrderHandler{Orders: orderSvc},
	}
}
