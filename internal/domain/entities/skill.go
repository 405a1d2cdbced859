package entities

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a tag employees can hold, e.g. "Register" or "Stock".
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillInput is the create/update payload. Nil fields were absent.
type SkillInput struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// SkillFilter drives skill listing.
type SkillFilter struct {
	Search   string
	Ordering []string
	Page     int
	Limit    int
}
