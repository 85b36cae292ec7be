// Package writers turns clash results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV/CSV/JSON/JSONL).
//   - core/clash stays domain-only; the app only picks a format name.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
