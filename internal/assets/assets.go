// Package assets provides the built-in book stylesheet and HTML templates,
// with optional filesystem overrides.
package assets

import "errors"

// Default asset names.
const (
	DefaultStyleName  = "book"
	TitleTemplateName = "title"
	styleExtension    = ".css"
	templateExtension = ".html"
)

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// Loader resolves named styles and templates to their content.
type Loader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
