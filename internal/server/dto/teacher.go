package dto

import (
	"time"

	"github.com/google/uuid"
)

type TeacherRequest struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty"`
	Course      string `json:"course" validate:"notblank,max=120"`
}

type TeacherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth *Date     `json:"dateOfBirth,omitempty"`
	Course      string    `json:"course"`
	Roles       string    `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
