// Package diag defines the diagnostic model shared by the analysis passes.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by library indexing and cross-unit resolution.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering belongs to the editor/tooling layer consuming the analysis
// results, which is outside this module.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – two-level enum (Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; message text is part of the analyzer's
//     observable contract and is asserted verbatim by tests.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "previously declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Passes use a diag.Reporter to decouple emission from storage. Resolution is
// best-effort and total: a failure to resolve one name is reported and the
// pass moves on, so a Bag accumulates everything a run produced. Bags support
// merging (per-library resolution runs independently) and deterministic
// sorting for stable output.
package diag
