// Package stage assembles output bundles from build products.
//
// A bundle is a directory tree holding exactly the files relevant to one
// job, ready for upload. Native jobs stage a single binary under its
// platform-conditional name. The packaging job stages package files under
// a code subdirectory and a full recursive copy of a static assets
// directory at the bundle root.
//
// All staging operations are idempotent: directories are created as
// needed and existing files are overwritten, so re-running against an
// already-staged bundle leaves identical contents.
package stage
