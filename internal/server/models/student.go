package models

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

type Student struct {
	ID uuid.UUID
	Person
	Course string
	Roles  common.Role
	Audit
}
