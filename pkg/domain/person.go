package domain

import (
	"time"

	"github.com/google/uuid"
)

// Person is a (fictional) car owner.
type Person struct {
	ID   string
	Name string
}

// UUIDThing is a demonstration record carrying one value of every custom
// scalar exposed by the API.
type UUIDThing struct {
	UUID     uuid.UUID
	Name     string
	Date     time.Time
	DateTime time.Time
}
