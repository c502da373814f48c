// Package pipeline implements the line-by-line Markdown-to-HTML transduction.
//
// The pipeline has three stages, applied to every input line in order:
//   - Reading: LineReader splits the source into lines and rejects lines that
//     are not valid UTF-8.
//   - Transduction: Transducer classifies the line as a heading ("#" first)
//     or paragraph text and renders a self-contained HTML fragment.
//   - Filtering: a FilterPolicy decides whether the fragment is kept.
//
// File handling, output naming and concurrency across files live in the root
// tinymd package and the CLI. A single pass through this package is strictly
// sequential.
package pipeline
