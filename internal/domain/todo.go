package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain entity: the persisted business object.
// Does not depend on Gin or Postgres.
type Todo struct {
	ID        uuid.UUID
	Title     string
	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
