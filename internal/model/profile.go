// Package model defines the normalized view models shared across the
// data layer. Every upstream shape (REST or GraphQL) converges on these
// types; absent upstream fields become zero values or empty collections
// so consumers never branch on shape.
package model

import "time"

// Profile is a snapshot of the portfolio owner's public GitHub identity.
// It is replaced wholesale on refetch; there are no partial updates.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatarUrl"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	Blog        string    `json:"blog"`
	PublicRepos int       `json:"publicRepos"`
	PublicGists int       `json:"publicGists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
}
