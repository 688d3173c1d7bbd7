package models

import (
	"strings"
	"time"
)

// Player представляет зарегистрированного участника чемпионата.
type Player struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	League    string    `json:"league" db:"league"`
	Club      string    `json:"club" db:"club"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns "First Last" with surrounding whitespace removed.
func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// IsComplete reports whether every registration field is filled in.
func (p Player) IsComplete() bool {
	fields := []string{p.FirstName, p.LastName, p.Email, p.Address, p.League, p.Club, p.Code}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return p.ID > 0
}

// PlayerPage is one page of the roster.
type PlayerPage struct {
	Players    []Player `json:"players"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}
