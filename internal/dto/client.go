package dto

import (
	"time"

	"github.com/advisorkit/fna_app/internal/core/domain"
)

// CreateClientRequest is the payload for registering a client profile.
type CreateClientRequest struct {
	FirstName         string     `json:"firstName" binding:"required"`
	LastName          string     `json:"lastName" binding:"required"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email" binding:"omitempty,email"`
	SpouseName        string     `json:"spouseName"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	SpouseDateOfBirth *time.Time `json:"spouseDateOfBirth"`
}

// ListClientsParams carries pagination query parameters.
type ListClientsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ClientResponse is one client profile as returned to the roster view.
type ClientResponse struct {
	ClientID          string     `json:"clientID"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	FullName          string     `json:"fullName"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty"`
	SpouseName        string     `json:"spouseName,omitempty"`
	City              string     `json:"city,omitempty"`
	State             string     `json:"state,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	SpouseDateOfBirth *time.Time `json:"spouseDateOfBirth,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastUpdatedAt     time.Time  `json:"lastUpdatedAt"`
}

// ListClientsResponse wraps the roster page.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ToClientResponse converts a domain profile to the response DTO.
func ToClientResponse(client domain.ClientProfile) ClientResponse {
	return ClientResponse{
		ClientID:          client.ClientID,
		FirstName:         client.FirstName,
		LastName:          client.LastName,
		FullName:          client.FullName(),
		Phone:             client.Phone,
		Email:             client.Email,
		SpouseName:        client.SpouseName,
		City:              client.City,
		State:             client.State,
		DateOfBirth:       client.DateOfBirth,
		SpouseDateOfBirth: client.SpouseDateOfBirth,
		CreatedAt:         client.CreatedAt,
		LastUpdatedAt:     client.LastUpdatedAt,
	}
}

// ToClientResponses converts a slice of profiles.
func ToClientResponses(clients []domain.ClientProfile) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
