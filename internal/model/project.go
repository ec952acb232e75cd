package model

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Link        string    `json:"link,omitempty"`
	GitHub      string    `json:"github,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
