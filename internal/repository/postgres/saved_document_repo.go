package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

type savedDocumentRepo struct {
	db *sqlx.DB
}

// NewSavedDocumentRepo creates a new PostgreSQL-backed snapshot store.
func NewSavedDocumentRepo(db *sqlx.DB) port.SavedDocumentRepository {
	return &savedDocumentRepo{db: db}
}

func (r *savedDocumentRepo) GetSaved(ctx context.Context, docType domain.DocType, name string) (*domain.TransactionDocument, error) {
	var row struct {
		DocStatus int             `db:"docstatus"`
		Data      json.RawMessage `db:"data"`
	}
	err := r.db.GetContext(ctx, &row,
		"SELECT docstatus, data FROM saved_documents WHERE doctype = $1 AND name = $2", string(docType), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("savedDocumentRepo.GetSaved: %w", err)
	}

	var doc domain.TransactionDocument
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, fmt.Errorf("savedDocumentRepo.GetSaved: decoding %s %q: %w", docType, name, err)
	}
	doc.DocType = docType
	doc.Name = name
	doc.DocStatus = domain.DocStatus(row.DocStatus)
	doc.IsNew = false
	return &doc, nil
}

func (r *savedDocumentRepo) Save(ctx context.Context, doc *domain.TransactionDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("savedDocumentRepo.Save: encoding: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO saved_documents (doctype, name, docstatus, data, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (doctype, name) DO UPDATE
		 SET docstatus = EXCLUDED.docstatus, data = EXCLUDED.data, updated_at = NOW()`,
		string(doc.DocType), doc.Name, int(doc.DocStatus), data)
	if err != nil {
		return fmt.Errorf("savedDocumentRepo.Save: %w", err)
	}
	return nil
}
