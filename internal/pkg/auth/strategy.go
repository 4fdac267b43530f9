package auth

import "time"

// Strategy issues and validates admin bearer tokens.
type Strategy interface {
	IssueToken(adminID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
