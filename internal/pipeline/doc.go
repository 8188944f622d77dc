// Package pipeline contains the HTML composition stages of document
// generation: Markdown preamble conversion and table HTML assembly.
// Rendering the composed HTML to PDF lives in the root package.
package pipeline
