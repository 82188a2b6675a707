// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package edits

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-uuid"

	"github.com/editbuf/editbuf/internal/document"
	ilsp "github.com/editbuf/editbuf/internal/lsp"
	"github.com/editbuf/editbuf/internal/protocol"
)

// Sink is a write-only channel for non-fatal conditions worth
// surfacing to the user, such as skipped stale edits.
type Sink interface {
	Notify(ctx context.Context, method string, params interface{}) error
}

type discardSink struct{}

func (discardSink) Notify(ctx context.Context, method string, params interface{}) error {
	return nil
}

// StaleEditWarning describes a versioned document edit which was
// skipped because the document moved on since the edit was
// computed. It is surfaced as a notification, never as an error.
type StaleEditWarning struct {
	URI             string
	ExpectedVersion int
	CurrentVersion  int
}

func (w StaleEditWarning) Message() string {
	return fmt.Sprintf("Skipped stale edit for %s (expected version %d, document is at %d)",
		w.URI, w.ExpectedVersion, w.CurrentVersion)
}

// Resolver fans a workspace edit out into per-document batches.
type Resolver struct {
	store   BufferStore
	applier *Applier
	sink    Sink
	logger  *log.Logger
}

func NewResolver(store BufferStore, applier *Applier, sink Sink) *Resolver {
	if sink == nil {
		sink = discardSink{}
	}
	return &Resolver{
		store:   store,
		applier: applier,
		sink:    sink,
		logger:  defaultLogger,
	}
}

func (r *Resolver) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// ApplyWorkspaceEdit dispatches the given edit to the batch applier,
// one batch per target document. The structured documentChanges form
// takes precedence over the plain changes mapping when both are set.
// An empty edit is a no-op.
//
// Stale operations (structured form only, where versions are known)
// are skipped and reported through the sink; closed documents fail
// their own operation but the remaining documents still get applied.
// Range and encoding failures abort the whole call; the failing
// document is left untouched as batches commit all-or-nothing.
func (r *Resolver) ApplyWorkspaceEdit(ctx context.Context, we protocol.WorkspaceEdit) error {
	txnId, err := uuid.GenerateUUID()
	if err != nil {
		return err
	}

	if len(we.DocumentChanges) > 0 {
		return r.applyDocumentChanges(ctx, txnId, we.DocumentChanges)
	}

	for docUri, edits := range we.Changes {
		dh := ilsp.HandleFromDocumentURI(docUri)
		err := r.applier.ApplyBatch(dh, edits)
		if err != nil {
			r.logger.Printf("workspace edit %s: failed for %s: %s", txnId, docUri, err)
			return err
		}
	}

	return nil
}

func (r *Resolver) applyDocumentChanges(ctx context.Context, txnId string, changes []protocol.DocumentChange) error {
	// File lifecycle operations are rejected up front so that a
	// mixed payload does not mutate any document before failing.
	for _, dc := range changes {
		if op := lifecycleOp(dc); op != "" {
			return &UnsupportedOperationErr{Op: op}
		}
	}

	var result *multierror.Error

	for _, dc := range changes {
		tde := dc.TextDocumentEdit
		if tde == nil {
			continue
		}

		docUri := tde.TextDocument.URI
		dh := ilsp.HandleFromDocumentURI(docUri)

		if tde.TextDocument.Version != nil {
			expected := int(*tde.TextDocument.Version)
			current, err := r.store.CurrentVersion(dh)
			if err != nil {
				if errors.Is(err, &document.DocumentNotFound{}) {
					r.logger.Printf("workspace edit %s: %s", txnId, err)
					result = multierror.Append(result, err)
					continue
				}
				return err
			}

			if current > expected {
				warning := StaleEditWarning{
					URI:             string(docUri),
					ExpectedVersion: expected,
					CurrentVersion:  current,
				}
				r.logger.Printf("workspace edit %s: %s", txnId, warning.Message())
				err = r.sink.Notify(ctx, "window/showMessage", protocol.ShowMessageParams{
					Type:    protocol.Warning,
					Message: warning.Message(),
				})
				if err != nil {
					r.logger.Printf("workspace edit %s: failed to notify: %s", txnId, err)
				}
				continue
			}
		}

		err := r.applier.ApplyBatch(dh, tde.Edits)
		if err != nil {
			if errors.Is(err, &document.DocumentNotFound{}) {
				r.logger.Printf("workspace edit %s: %s", txnId, err)
				result = multierror.Append(result, err)
				continue
			}
			r.logger.Printf("workspace edit %s: failed for %s: %s", txnId, docUri, err)
			return err
		}
	}

	return result.ErrorOrNil()
}

func lifecycleOp(dc protocol.DocumentChange) string {
	switch {
	case dc.CreateFile != nil:
		return dc.CreateFile.Kind
	case dc.RenameFile != nil:
		return dc.RenameFile.Kind
	case dc.DeleteFile != nil:
		return dc.DeleteFile.Kind
	}
	return ""
}
