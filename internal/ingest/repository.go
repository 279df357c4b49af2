package ingest

import "context"

// ImportRepository owns the atomic batch replace. Either every delete and
// insert lands, or none do.
type ImportRepository interface {
	ReplaceAll(ctx context.Context, batch *Batch) error
}
