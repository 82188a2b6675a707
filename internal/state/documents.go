// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"bytes"
	"log"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"

	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/source"
)

type DocumentStore struct {
	db        *memdb.MemDB
	tableName string
	logger    *log.Logger

	// TimeProvider provides current time (for mocking time.Now in tests)
	TimeProvider func() time.Time
}

func (s *DocumentStore) OpenDocument(dh document.Handle, langId string, version int, text []byte) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(s.tableName, "id", dh.Dir, dh.Filename)
	if err != nil {
		return err
	}
	if obj != nil {
		return &AlreadyExistsError{
			Idx: dh.FullURI(),
		}
	}

	doc := &document.Document{
		Dir:          dh.Dir,
		Filename:     dh.Filename,
		ModTime:      s.TimeProvider(),
		LanguageID:   langId,
		Version:      version,
		FinalNewline: bytes.HasSuffix(text, []byte("\n")),
		Text:         text,
		Lines:        source.MakeSourceLines(dh.Filename, text),
	}

	err = txn.Insert(s.tableName, doc)
	if err != nil {
		return err
	}

	txn.Commit()
	return nil
}

func (s *DocumentStore) UpdateDocument(dh document.Handle, newText []byte, newVersion int) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	doc, err := copyDocument(txn, dh)
	if err != nil {
		return err
	}

	doc.Text = newText
	doc.Lines = source.MakeSourceLines(dh.Filename, newText)
	doc.Version = newVersion
	doc.ModTime = s.TimeProvider()

	err = txn.Insert(s.tableName, doc)
	if err != nil {
		return err
	}

	txn.Commit()
	return nil
}

func copyDocument(txn *memdb.Txn, dh document.Handle) (*document.Document, error) {
	doc, err := getDocument(txn, dh)
	if err != nil {
		return nil, err
	}

	return doc.Copy(), nil
}

func (s *DocumentStore) GetDocument(dh document.Handle) (*document.Document, error) {
	txn := s.db.Txn(false)
	return getDocument(txn, dh)
}

func getDocument(txn *memdb.Txn, dh document.Handle) (*document.Document, error) {
	obj, err := txn.First(documentsTableName, "id", dh.Dir, dh.Filename)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, &document.DocumentNotFound{
			URI: dh.FullURI(),
		}
	}
	return obj.(*document.Document), nil
}

func (s *DocumentStore) CloseDocument(dh document.Handle) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(s.tableName, "id", dh.Dir, dh.Filename)
	if err != nil {
		return err
	}

	if obj == nil {
		// already removed
		return &document.DocumentNotFound{
			URI: dh.FullURI(),
		}
	}

	_, err = txn.DeleteAll(s.tableName, "id", dh.Dir, dh.Filename)
	if err != nil {
		return err
	}

	txn.Commit()
	return nil
}

func (s *DocumentStore) ListDocumentsInDir(dirHandle document.DirHandle) ([]*document.Document, error) {
	txn := s.db.Txn(false)
	it, err := txn.Get(s.tableName, "dir", dirHandle)
	if err != nil {
		return nil, err
	}

	docs := make([]*document.Document, 0)
	for item := it.Next(); item != nil; item = it.Next() {
		doc := item.(*document.Document)
		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *DocumentStore) IsDocumentOpen(dh document.Handle) (bool, error) {
	txn := s.db.Txn(false)

	obj, err := txn.First(s.tableName, "id", dh.Dir, dh.Filename)
	if err != nil {
		return false, err
	}

	return obj != nil, nil
}

// LineRange returns the logical lines [startLine, endLine) of the
// document. Both bounds are validated against the stored body,
// out-of-bounds requests are errors rather than being clamped.
func (s *DocumentStore) LineRange(dh document.Handle, startLine, endLine int) ([]string, error) {
	txn := s.db.Txn(false)
	doc, err := getDocument(txn, dh)
	if err != nil {
		return nil, err
	}

	logical := doc.LogicalLines()
	err = validateLineRange(logical, startLine, endLine)
	if err != nil {
		return nil, err
	}

	lines := make([]string, endLine-startLine)
	copy(lines, logical[startLine:endLine])
	return lines, nil
}

// ReplaceLineRange replaces the logical lines [startLine, endLine)
// of the document with the given lines and rebuilds the stored body.
// A document which followed the trailing terminator convention when
// it was opened keeps following it. The document version is left
// untouched as it tracks client-issued changes only.
func (s *DocumentStore) ReplaceLineRange(dh document.Handle, startLine, endLine int, lines []string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	doc, err := copyDocument(txn, dh)
	if err != nil {
		return err
	}

	logical := doc.LogicalLines()
	err = validateLineRange(logical, startLine, endLine)
	if err != nil {
		return err
	}

	newLogical := make([]string, 0, startLine+len(lines)+(len(logical)-endLine))
	newLogical = append(newLogical, logical[:startLine]...)
	newLogical = append(newLogical, lines...)
	newLogical = append(newLogical, logical[endLine:]...)

	text := strings.Join(newLogical, "\n")
	if doc.FinalNewline {
		text += "\n"
	}

	doc.Text = []byte(text)
	doc.Lines = source.MakeSourceLines(dh.Filename, doc.Text)
	doc.ModTime = s.TimeProvider()

	err = txn.Insert(s.tableName, doc)
	if err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// LineCount returns the number of logical lines in the document.
func (s *DocumentStore) LineCount(dh document.Handle) (int, error) {
	txn := s.db.Txn(false)
	doc, err := getDocument(txn, dh)
	if err != nil {
		return 0, err
	}

	return len(doc.LogicalLines()), nil
}

func (s *DocumentStore) CurrentVersion(dh document.Handle) (int, error) {
	txn := s.db.Txn(false)
	doc, err := getDocument(txn, dh)
	if err != nil {
		return 0, err
	}

	return doc.Version, nil
}

// RequiresFinalNewline reports whether the document follows the
// trailing line terminator convention, as detected when it was opened.
func (s *DocumentStore) RequiresFinalNewline(dh document.Handle) (bool, error) {
	txn := s.db.Txn(false)
	doc, err := getDocument(txn, dh)
	if err != nil {
		return false, err
	}

	return doc.FinalNewline, nil
}

func validateLineRange(logical []string, startLine, endLine int) error {
	if startLine < 0 || endLine < startLine || endLine > len(logical) {
		return &document.InvalidRangeErr{
			Range: document.Range{
				Start: document.Pos{Line: startLine},
				End:   document.Pos{Line: endLine},
			},
			Reason: "line range out of document bounds",
		}
	}
	return nil
}
