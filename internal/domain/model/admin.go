package model

import "time"

// Admin is a back-office user allowed to manage catalog, orders and messages.
type Admin struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
