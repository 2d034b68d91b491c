package models

import (
	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"
)

type Teacher struct {
	ID uuid.UUID
	Person
	Course string
	Roles  common.Role
	Audit
}
