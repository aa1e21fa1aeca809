package domain

import "time"

// Client represents a registered customer of the rental store. Subscribed
// records whether the client opted into the store newsletter.
type Client struct {
	ClientID    string    `json:"clientID"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Subscribed  bool      `json:"subscribed"`
	AuditFields
}

// FullName returns the client's display name.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
