// Package models defines the data transferred between the client and the
// LibShelf service.
package models

import "time"

// Book is a catalog entry as returned by the service.
type Book struct {
	ID          string     `json:"_id"`
	Images      []string   `json:"bookImages"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn"`
	Quantity    int        `json:"quantity"`
	Available   int        `json:"available"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Book status values used by the service.
const (
	BookStatusAvailable = "Available"
	BookStatusBorrowed  = "Borrowed"
)
