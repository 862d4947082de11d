package models

import "github.com/google/uuid"

type Account struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	AssignedAssessor *uuid.UUID `json:"assignedAssessor,omitempty"`
	IsActive         bool       `json:"isActive"`
}

func (a *Account) Owner() *Owner {
	return &Owner{ID: a.ID, Name: a.Name, Email: a.Email}
}
