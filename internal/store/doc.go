// Package store uploads completed output bundles to an artifact store.
//
// A [Store] accepts a staged bundle directory and persists it as a single
// named artifact. Bundles are archived as gzip-compressed tarballs before
// upload. Two backends are provided: [ObjectStore] writes to an
// S3-compatible object store, and [DirStore] writes to a local directory.
//
// Each artifact name is written at most once per release run; the
// orchestrator partitions names statically (one per platform plus a fixed
// generic name), so backends do not need to handle concurrent writes to
// the same key.
package store
