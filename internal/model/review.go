package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// UnmarshalJSON accepts rating as a number or a numeric string. Values
// outside 1..5 or not parseable become nil.
func (r *Review) UnmarshalJSON(b []byte) error {
	type alias Review
	aux := struct {
		*alias
		Rating json.RawMessage `json:"rating"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Rating = ParseRating(aux.Rating)
	r.ratingSet = aux.Rating != nil
	return nil
}

// ParseRating converts a raw JSON rating to a value in 1..5, or nil.
func ParseRating(raw json.RawMessage) *int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	if n < 1 || n > 5 {
		return nil
	}
	return &n
}
