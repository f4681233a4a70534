// Package assets provides the stylesheets and page templates used to wrap
// formatted fragments into standalone HTML documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader the CLI uses. A custom directory can override
// any single asset while the rest fall back to the embedded defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # stylesheet inlined into <style>
//	└── templates/
//	    └── {name}.html      # html/template page layout
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// DefaultTemplateName is the name of the built-in page template.
const DefaultTemplateName = "document"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in stylesheet by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a built-in page template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
