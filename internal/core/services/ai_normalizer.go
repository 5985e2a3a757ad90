package services

import (
	"strings"

	"github.com/taskpilot/backend/internal/domain"
	"github.com/tidwall/gjson"
)

// NormalizeTaskSuggestions turns the raw completion text of a provider into
// task candidates. Providers frequently wrap the JSON payload in prose or
// markdown fences, so the text between the first '{' and the last '}' is
// taken as the JSON candidate before parsing.
//
// A valid object without a "tasks" array yields an empty list, which is a
// legitimate outcome and distinct from the error cases: whitespace-only
// input fails with ErrEmptyResponse, anything that does not parse to a JSON
// object fails with ErrMalformedResponse. Entries that are not objects, or
// whose title trims down to nothing, are dropped; order is preserved.
func NormalizeTaskSuggestions(raw string) ([]domain.TaskCandidate, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	slice := text
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end >= start {
		slice = text[start : end+1]
	}

	if !gjson.Valid(slice) {
		return nil, ErrMalformedResponse
	}
	root := gjson.Parse(slice)
	if !root.IsObject() {
		return nil, ErrMalformedResponse
	}

	tasks := root.Get("tasks")
	if !tasks.IsArray() {
		return []domain.TaskCandidate{}, nil
	}

	elements := tasks.Array()
	candidates := make([]domain.TaskCandidate, 0, len(elements))
	for _, el := range elements {
		if !el.IsObject() {
			continue
		}
		title := candidateTitle(el.Get("title"))
		if title == "" {
			continue
		}
		candidates = append(candidates, domain.TaskCandidate{
			Title:       title,
			IsCompleted: el.Get("isCompleted").Bool(),
		})
	}

	return candidates, nil
}

// candidateTitle coerces a title field to text. Strings and numbers carry a
// usable textual value; null, booleans, arrays and objects do not and cause
// the entry to be dropped.
func candidateTitle(v gjson.Result) string {
	switch v.Type {
	case gjson.String, gjson.Number:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}
