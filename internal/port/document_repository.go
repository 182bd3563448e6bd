package port

import (
	"context"

	"lbseries/internal/domain"
)

// SavedDocumentRepository holds the last persisted version of each document.
type SavedDocumentRepository interface {
	GetSaved(ctx context.Context, docType domain.DocType, name string) (*domain.TransactionDocument, error)
	Save(ctx context.Context, doc *domain.TransactionDocument) error
}

// SeriesRepository is the counter-backed name generator. Next atomically
// increments and returns the counter of prefix, starting at 1.
type SeriesRepository interface {
	Next(ctx context.Context, prefix string) (int64, error)
	Current(ctx context.Context, prefix string) (int64, error)
}

// ClientScriptRepository defines the contract for the framework's script store.
type ClientScriptRepository interface {
	Upsert(ctx context.Context, script *domain.ClientScript) error
	GetByName(ctx context.Context, name string) (*domain.ClientScript, error)
	Delete(ctx context.Context, name string) error
}
