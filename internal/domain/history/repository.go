package history

import "context"

type Repository interface {
	// Append inserts a new entry. There is deliberately no update or
	// delete: the trail is append-only.
	Append(ctx context.Context, e *Entry) error

	// ListByRequestID returns entries in stable insertion order.
	// Callers wanting reverse-chronological display sort client-side.
	ListByRequestID(ctx context.Context, requestID uint64) ([]Entry, error)
}
