package assets

// Default asset names.
const (
	DefaultStyle    = "plain"
	DefaultTemplate = "table"
)

// Loader defines the contract for loading CSS styles and HTML templates.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}
