package services

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"classplus/internal/repos"
	"classplus/internal/validate"
)

var ErrBadOrderBody = errors.New("order body must be a JSON object")

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Place stores a submitted order body verbatim under a new id. The body
// must be a JSON object; beyond that it is accepted as-is. Placing an
// order never touches lesson availability.
func (s *OrderService) Place(body []byte) (string, error) {
	m, ok := validate.OrderBody(body)
	if !ok {
		return "", ErrBadOrderBody
	}

	id := uuid.NewString()
	if err := s.Orders.Create(id, string(body), validate.Topic(m), validate.Qty(m)); err != nil {
		return "", err
	}
	return id, nil
}

// List returns every stored order as its submitted fields. The assigned
// id is added only when the body did not carry an id of its own, so
// submitted bodies always come back unmodified.
func (s *OrderService) List() ([]map[string]any, error) {
	rows, err := s.Orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		var m map[string]any
		if err := json.Unmarshal([]byte(r.Body), &m); err != nil {
			return nil, err
		}
		if _, exists := m["id"]; !exists {
			m["id"] = r.ID
		}
		out = append(out, m)
	}
	return out, nil
}
