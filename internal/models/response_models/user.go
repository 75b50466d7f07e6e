package response_models

import (
	"cityguide/internal/models/db_models"
	"cityguide/internal/services"
)

// User never carries the password hash.
type User struct {
	ID        uint         `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Role      string       `json:"role"`
	City      *CitySummary `json:"city"`
	Ratings   []Rating     `json:"ratings,omitempty"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Session struct {
	Email      *string `json:"email"`
	IsLoggedIn bool    `json:"isLoggedIn"`
	Role       *string `json:"role"`
}

func NewUser(u *db_models.User) User {
	out := User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
	if u.City != nil {
		city := newCitySummary(u.City)
		out.City = &city
	}
	if u.Ratings != nil {
		out.Ratings = NewRatings(u.Ratings)
	}
	return out
}

func newUserSummary(u *db_models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
}

func NewSession(s services.Session) Session {
	if !s.IsLoggedIn {
		return Session{}
	}
	email, role := s.Email, string(s.Role)
	return Session{Email: &email, IsLoggedIn: true, Role: &role}
}
