package models

import "time"

type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderApple  AuthProvider = "apple"
)

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	Avatar       string       `json:"avatar,omitempty"`
	Provider     AuthProvider `json:"provider"`
	CreatedAt    time.Time    `json:"created_at"`
	TokenVersion int          `json:"-"`
}
