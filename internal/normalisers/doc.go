// Package normalisers holds the pure text transforms behind the editors.
//
//   - markdown: the synchronous Markdown cleanup applied to pasted or imported
//     text before the formatter runs.
//   - jsontree: order-preserving JSON parsing, tree rendering, pretty printing
//     and minifying.
//
// Normalisers never perform I/O and never mutate their input.
package normalisers
