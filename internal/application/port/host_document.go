package port

import "context"

// Element is one node of the host document as seen by the font engine.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string
	HasClass(name string) bool
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	// SetStyleProperty sets an inline style property (custom properties included).
	SetStyleProperty(name, value string)
	RemoveStyleProperty(name string)
	// ComputedFontSize returns the element's effective font size in px.
	ComputedFontSize() (float64, error)
	// Descendants returns every element below this one in document order.
	Descendants() []Element
}

// StyleBlock identifies an injected stylesheet.
type StyleBlock struct {
	ID     string
	Marker string // attribute present on the style element
	CSS    string
}

// HostDocument is the live document the engine styles.
type HostDocument interface {
	// Body returns the document body, or nil when the document is not ready.
	Body() Element

	// InsertStyle appends a style element carrying block.ID and block.Marker.
	InsertStyle(ctx context.Context, block StyleBlock) error

	// RemoveStyles removes the style element with id and every style element
	// carrying any of the marker attributes. Absent elements are ignored.
	RemoveStyles(ctx context.Context, id string, markers ...string)

	// QueryByAttr returns all elements whose attribute name equals value.
	QueryByAttr(name, value string) []Element

	// ObserveSubtrees calls fn with the root of every subtree inserted after
	// the call. The returned function stops observation.
	ObserveSubtrees(fn func(added []Element)) (disconnect func(), err error)

	// RootPropertyPx reads a custom property from the root computed style in px.
	RootPropertyPx(name string) (float64, bool)

	// RemoveRootProperties removes inline custom properties from the root element.
	RemoveRootProperties(names ...string)
}

// StyleBatcher is implemented by documents that publish style changes outside
// the process. Insertions and removals between BeginStyles and CommitStyles
// become visible together, so readers never see a half-swapped stylesheet.
type StyleBatcher interface {
	BeginStyles()
	CommitStyles(ctx context.Context) error
}

// FontFaceLoader asks the host to load a font face ahead of use.
type FontFaceLoader interface {
	LoadFont(ctx context.Context, spec string) error
}

// ObjectURLs creates transient in-memory references to binary data.
type ObjectURLs interface {
	CreateObjectURL(data []byte, mimeType string) (string, error)
	// RevokeObjectURL releases a reference. Revoking an unknown URL is a no-op.
	RevokeObjectURL(url string)
}

// HostMode reports host capabilities that gate management actions.
type HostMode interface {
	ReadOnly() bool
}
