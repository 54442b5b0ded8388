// Package quillmark decomposes markdown documents annotated with YAML
// metadata blocks and validates the result against template-supplied schemas.
//
// It provides:
//
//   - Decomposition of raw text into a global field set plus an ordered card
//     collection (Decompose), with structural errors surfaced as *ParseError
//   - Schema compilation from field/card descriptors into a shared, immutable
//     validation tree (Compile)
//   - A collect-all validator/defaulter that fills defaults, coerces values,
//     and reports Diagnostics without aborting (Schema.Validate)
//   - A stable diagnostic model (code, severity, field path, source location)
//
// Design policy:
//
//   - Keep only public APIs in the root package; the compiled schema tree
//     lives under internal/.
//   - Place the template-descriptor loader under quill/, the JSON Schema
//     export model under jsonschema/, and diagnostic message catalogs under
//     i18n/.
//   - The core is pure and synchronous: no I/O, no shared mutable state, no
//     internal cancellation. A compiled *Schema may be shared across any
//     number of concurrent Validate calls.
//
// Typical usage:
//
//	doc, err := quillmark.Decompose(src)
//
//	q, err := quill.Parse(descriptor)
//	s, err := q.Compile()
//	doc, diags, err := quillmark.Process(ctx, src, s)
package quillmark
