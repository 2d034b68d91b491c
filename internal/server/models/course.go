package models

import "github.com/google/uuid"

type Course struct {
	ID          uuid.UUID
	Name        string
	Workload    int
	Description string
	SyllabusKey string // object key in the syllabus bucket, empty when none was uploaded
	Audit
}
