package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudentRequest struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty"`
	Course      string `json:"course" validate:"max=120"`
}

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth *Date     `json:"dateOfBirth,omitempty"`
	Course      string    `json:"course"`
	Roles       string    `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PersonUpdateRequest is the partial update body for students and teachers.
// Absent fields are left unchanged.
type PersonUpdateRequest struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     *string    `json:"name,omitempty" validate:"omitempty,notblank,max=120"`
	Email    *string    `json:"email,omitempty" validate:"omitempty,email"`
	Password *string    `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
}
