package dto

import (
	"time"

	"github.com/google/uuid"
)

// CourseRequest is used for creation and full replacement.
type CourseRequest struct {
	Name        string `json:"name" validate:"notblank,max=120"`
	Workload    *int   `json:"workload" validate:"required,min=1"`
	Description string `json:"description" validate:"notblank,max=2000"`
}

type CoursePatchRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=120"`
	Workload    *int    `json:"workload,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty,notblank,max=2000"`
}

type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Workload    int       `json:"workload"`
	Description string    `json:"description"`
	HasSyllabus bool      `json:"hasSyllabus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SyllabusURL is a presigned object storage URL.
type SyllabusURL struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}
