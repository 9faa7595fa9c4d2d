package store

import "context"

// Refers to an uploaded artifact. Immutable once created.
type Handle struct {
	Name     string // Artifact name the bundle was uploaded under.
	Location string // Backend-specific location (object URL or file path).
	Size     int64  // Size of the uploaded archive in bytes.
}

// Accepts completed output bundles.
//
// Upload hands a staged bundle directory to the store as a single named
// unit. Callers use statically partitioned names (one per platform plus a
// fixed generic name), so concurrent uploads never write the same key.
type Store interface {
	Upload(ctx context.Context, name, dir string) (*Handle, error)
}
