package repository

import (
	"bytes"
	"encoding/json"
)

type joinedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// normalizeCategory is the single boundary where the joined category's
// inconsistent shapes are flattened: depending on the query path the join
// arrives either as one object or as a (possibly empty) array holding one.
// Everything past this function sees a plain single value.
func normalizeCategory(raw []byte) (joinedCategory, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return joinedCategory{}, false
	}

	if trimmed[0] == '[' {
		var categories []joinedCategory
		if err := json.Unmarshal(trimmed, &categories); err != nil || len(categories) == 0 {
			return joinedCategory{}, false
		}
		return categories[0], categories[0].ID != ""
	}

	var category joinedCategory
	if err := json.Unmarshal(trimmed, &category); err != nil {
		return joinedCategory{}, false
	}
	return category, category.ID != ""
}
