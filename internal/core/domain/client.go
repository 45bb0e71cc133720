package domain

import "time"

// ClientProfile holds the identity and demographic fields of a client.
// It is replaced wholesale when the advisor switches client; the plan
// session never mutates it piecemeal.
type ClientProfile struct {
	ClientID          string     `json:"clientID"` // Primary Key (UUID)
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	SpouseName        string     `json:"spouseName"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	SpouseDateOfBirth *time.Time `json:"spouseDateOfBirth,omitempty"`
	AuditFields
}

// FullName returns the display name used on report pages.
func (c ClientProfile) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
