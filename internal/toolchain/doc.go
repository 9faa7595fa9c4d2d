// Package toolchain invokes the external build, packaging, and strip tools.
//
// The orchestrator treats these tools as opaque collaborators behind a
// narrow run-and-collect-exit-code boundary. A [Runner] executes one
// command per invocation in a caller-chosen working directory with an
// explicit environment overlay. [ExecBuilder], [ExecPackager], and
// [ExecStripper] wrap the runner with the conventions each tool expects:
// the builder passes the target platform and release mode via environment
// variables, the packager scans its output directory for produced files,
// and the stripper rewrites a binary in place.
//
// No retry or timeout policy is applied here; commands block until the
// external tool exits.
package toolchain
