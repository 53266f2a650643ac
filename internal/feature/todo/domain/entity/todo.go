// Package entity defines the domain entities for the todo feature.
package entity

import "time"

// Todo represents a single task owned by a user.
// Ownership is tracked by the owner's email address, matching the users table.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey" json:"id"`

	// Description is the task text.
	Description string `gorm:"size:255;not null" json:"description"`

	// Completed reports whether the task has been finished.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// Email is the owner's email address.
	Email string `gorm:"index;size:255" json:"email"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time `json:"-"`
}
