// Package models contains the database models for the Spending backend.
package models

import "time"

// Model is the base model for resources that track their creation time.
//
// Deleted records are gone for good, so there is no DeletedAt. Updates do
// not touch CreatedAt, it is set once at insertion.
type Model struct {
	ID        uint64    `json:"id" gorm:"primaryKey" example:"4"`
	CreatedAt time.Time `json:"createdAt" example:"2024-06-01T19:28:44.491514Z"`
}
