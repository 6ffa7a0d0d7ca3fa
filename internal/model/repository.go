package model

import "time"

// Language is a programming language with its GitHub display color.
type Language struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Repository is the normalized repository view model. It unifies the two
// upstream shapes (REST repo object, GraphQL pinned item) into one type.
type Repository struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	URL             string     `json:"url"`
	HomepageURL     string     `json:"homepageUrl"`
	Stars           int        `json:"stargazerCount"`
	Forks           int        `json:"forkCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PrimaryLanguage *Language  `json:"primaryLanguage"`
	Languages       []Language `json:"languages"`
	ImageURL        string     `json:"openGraphImageUrl"`
	Topics          []string   `json:"topics"`
	Fork            bool       `json:"fork"`
}

// Normalized returns a copy with nil collections replaced by empty ones.
// Applying it to an already-normalized repository is a no-op, so mapping
// code can call it unconditionally.
func (r Repository) Normalized() Repository {
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.Topics == nil {
		r.Topics = []string{}
	}
	return r
}
