package validate

import (
	"encoding/json"
	"strings"
)

// OrderBody checks that a submitted order is a JSON object and returns the
// decoded fields. The shape of the object is otherwise unconstrained.
func OrderBody(b []byte) (map[string]any, bool) {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed[0] != '{' {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, false
	}
	return m, true
}

// Topic pulls a lessonTopic string out of a decoded order body, if present.
func Topic(m map[string]any) string {
	s, _ := m["lessonTopic"].(string)
	return strings.TrimSpace(s)
}

// Qty pulls a positive quantity out of a decoded order body. JSON numbers
// decode as float64; anything non-numeric or non-positive yields 0.
func Qty(m map[string]any) int {
	f, ok := m["quantity"].(float64)
	if !ok || f < 1 {
		return 0
	}
	return int(f)
}
