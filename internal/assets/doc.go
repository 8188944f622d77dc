// Package assets loads CSS styles and HTML templates for document
// composition.
//
// The default loader serves assets embedded in the binary. A filesystem
// loader can override them with a user-supplied asset directory laid out
// the same way:
//
//	assets/
//	├── styles/
//	│   ├── plain.css
//	│   └── grid.css
//	└── templates/
//	    └── table.html
package assets
