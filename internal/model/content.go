package model

import "time"

// Blog is a blog post or external article teaser.
type Blog struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Excerpt      string    `json:"excerpt,omitempty"`
	Content      string    `json:"content,omitempty"`
	Image        string    `json:"image,omitempty"`
	ExternalLink string    `json:"externalLink,omitempty"`
	CTALink      string    `json:"ctaLink,omitempty"`
	CTAText      string    `json:"ctaText,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Review is a client testimonial. Rating is 1..5 or nil.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Text      string    `json:"text"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ratingSet bool
}

// RatingSet reports whether the decoded body carried a "rating" key, even a
// null or unparseable one.
func (r *Review) RatingSet() bool { return r.ratingSet }

// Service is an offered service.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Skill is a skill bar entry, displayed by ascending Order.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember is a person on the team page.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Website   string    `json:"website,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
