// Package snapshot serializes the whole store into one importable/exportable
// backup document and restores it atomically.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/lifeos/internal/client/store"
	"github.com/dmitrijs2005/lifeos/internal/common"
)

// Document is the backup wire format: a flat mapping of every key to its raw
// serialized value, wrapped with the export timestamp.
type Document struct {
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

type Codec struct {
	store *store.Store
}

func NewCodec(s *store.Store) *Codec {
	return &Codec{store: s}
}

// Export enumerates every key currently in the store and returns a document
// holding the raw values, so an export/import round trip is byte-identical.
func (c *Codec) Export(ctx context.Context) (*Document, error) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing keys: %w", err)
	}

	doc := &Document{Timestamp: time.Now(), Data: make(map[string]string, len(keys))}
	for _, key := range keys {
		raw, ok, err := c.store.GetRaw(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("error reading key %q: %w", key, err)
		}
		if !ok {
			continue
		}
		doc.Data[key] = raw
	}
	return doc, nil
}

// WriteTo writes the document as indented JSON.
func (d *Document) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Decode reads a backup document from r. Any shape problem is reported as
// ErrMalformedDocument; nothing is applied to the store here.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrMalformedDocument, err.Error())
	}
	if doc.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", common.ErrMalformedDocument)
	}
	return &doc, nil
}

// Import overwrites the store entry for every key in the document. The whole
// document is validated first and the overwrite runs in one transaction, so
// a malformed document leaves the existing store completely unchanged.
// Destructive; the CLI requires explicit confirmation before calling this.
func (c *Codec) Import(ctx context.Context, doc *Document) error {
	if doc == nil || doc.Data == nil {
		return fmt.Errorf("%w: missing data field", common.ErrMalformedDocument)
	}
	for key, raw := range doc.Data {
		if !json.Valid([]byte(raw)) {
			return fmt.Errorf("%w: value for key %q is not valid JSON", common.ErrMalformedDocument, key)
		}
	}

	if err := c.store.ReplaceAll(ctx, doc.Data); err != nil {
		return fmt.Errorf("error restoring snapshot: %w", err)
	}
	return nil
}

// Reset clears every key unconditionally. The CLI gates this behind a second
// explicit confirmation.
func (c *Codec) Reset(ctx context.Context) error {
	return c.store.Clear(ctx)
}
