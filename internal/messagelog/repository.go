package messagelog

//go:generate mockgen -destination=mock/mock_repository.go -package=messagelogmock github.com/KirkDiggler/roguelike-api/internal/messagelog Repository

import (
	"context"
	"time"
)

// Entry is one persisted narration message for a session
type Entry struct {
	SessionID string    `json:"session_id"`
	Message   Message   `json:"message"`
	At        time.Time `json:"at"`
}

// Repository defines the storage interface for narration history
type Repository interface {
	// Append stores a message at the end of a session's history
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// List retrieves a session's history, oldest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Clear removes a session's history
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)
}

// AppendInput defines the request for appending a message
type AppendInput struct {
	SessionID string
	Message   *Message
}

// AppendOutput defines the response for appending a message
type AppendOutput struct {
	Entry *Entry
}

// ListInput defines the request for listing a session's history.
// Limit bounds the result to the most recent messages; zero means all.
type ListInput struct {
	SessionID string
	Limit     int
}

// ListOutput defines the response for listing a session's history
type ListOutput struct {
	Entries []*Entry
}

// ClearInput defines the request for clearing a session's history
type ClearInput struct {
	SessionID string
}

// ClearOutput defines the response for clearing a session's history
type ClearOutput struct {
	Removed int64
}
