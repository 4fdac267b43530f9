package model

import "time"

// ContactStatus tracks handling of an inbound contact message.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Status    ContactStatus
	Replied   bool
	CreatedAt time.Time
}
