package domain

import (
	"context"
)

// Collections held by the document store.
const (
	CollectionUsers       = "users"
	CollectionInternships = "internships"
	CollectionHackathons  = "hackathons"
)

// Document is a schemaless record as kept by the document store.
// Values follow JSON decoding conventions: strings, float64, bool, []any, map[string]any.
type Document map[string]any

type StoredDocument struct {
	ID   string
	Data Document
}

// Patch is a merge-update. Set fields overwrite existing values. Union fields
// are appended to the stored array, skipping values already present.
// UnionKey, when set, decides equality for the union (defaults to exact match).
type Patch struct {
	Set      Document
	Union    map[string][]string
	UnionKey func(string) string
}

type DocumentStore interface {
	// Get returns found=false without error when the document does not exist.
	Get(ctx context.Context, collection, id string) (doc Document, found bool, err error)
	// Merge creates the document when missing.
	Merge(ctx context.Context, collection, id string, patch Patch) error
	// List returns every document of the collection in catalog order.
	List(ctx context.Context, collection string) ([]StoredDocument, error)
}

// Apply returns a new document with the patch merged over doc. doc is not modified.
func (p Patch) Apply(doc Document) Document {
	out := make(Document, len(doc)+len(p.Set)+len(p.Union))
	for k, v := range doc {
		out[k] = v
	}
	for k, v := range p.Set {
		out[k] = v
	}
	for field, values := range p.Union {
		out[field] = unionValues(out[field], values, p.UnionKey)
	}
	return out
}

// A non-array existing value is replaced by the union items, like Firestore arrayUnion.
func unionValues(existing any, values []string, key func(string) string) []any {
	if key == nil {
		key = func(s string) string { return s }
	}

	var merged []any
	switch items := existing.(type) {
	case []any:
		merged = append(merged, items...)
	case []string:
		for _, s := range items {
			merged = append(merged, s)
		}
	}

	seen := make(map[string]struct{}, len(merged)+len(values))
	for _, item := range merged {
		if s, ok := item.(string); ok {
			seen[key(s)] = struct{}{}
		}
	}
	for _, v := range values {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, v)
	}
	if merged == nil {
		merged = []any{}
	}
	return merged
}

// Text returns the field when it holds a string.
func (d Document) Text(field string) (string, bool) {
	s, ok := d[field].(string)
	return s, ok
}

// StringList returns the string elements of an array field.
// Non-string elements are skipped; ok is false when the field is not an array.
func (d Document) StringList(field string) ([]string, bool) {
	return stringList(d[field])
}

func stringList(v any) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return append([]string(nil), items...), true
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Clone copies the top level of the document and any top-level arrays.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		switch items := v.(type) {
		case []any:
			out[k] = append([]any(nil), items...)
		case []string:
			out[k] = append([]string(nil), items...)
		default:
			out[k] = v
		}
	}
	return out
}
