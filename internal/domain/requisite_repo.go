package domain

import "context"

// LocalEditStore keeps requisites created or modified by operators.
// Load treats a missing or malformed slot as an empty list; only transport
// failures are returned as errors.
type LocalEditStore interface {
	Load(ctx context.Context) ([]Requisite, error)
	Save(ctx context.Context, list []Requisite) error
}
