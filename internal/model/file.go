package model

// Kind is the closed set of file kinds shown in the workspace
type Kind string

const (
	KindDocument     Kind = "document"
	KindSpreadsheet  Kind = "spreadsheet"
	KindPDF          Kind = "pdf"
	KindImage        Kind = "image"
	KindCode         Kind = "code"
	KindPresentation Kind = "presentation"
	KindData         Kind = "data"
	KindArchive      Kind = "archive"
)

// Valid returns true if the kind is known
func (k Kind) Valid() bool {
	switch k {
	case KindDocument, KindSpreadsheet, KindPDF, KindImage, KindCode,
		KindPresentation, KindData, KindArchive:
		return true
	}
	return false
}

// Collection names the fixture list a file belongs to
type Collection string

const (
	CollectionLocal     Collection = "local"
	CollectionCloud     Collection = "cloud"
	CollectionKnowledge Collection = "knowledge"
	CollectionPopular   Collection = "popular"
)

// Well-known sources. Any string is accepted; these only drive styling.
const (
	SourceLocal       = "Local"
	SourceGoogleDrive = "Google Drive"
	SourceDropbox     = "Dropbox"
	SourceOneDrive    = "OneDrive"
	SourceNotion      = "Notion"
	SourceSlack       = "Slack"
)

// File is a workspace file from a local folder or a simulated integration
type File struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Kind         Kind       `json:"type" yaml:"type"`
	Size         string     `json:"size" yaml:"size"`
	Source       string     `json:"source" yaml:"source"`
	LastModified string     `json:"last_modified" yaml:"last_modified"`
	AccessCount  int        `json:"access_count,omitempty" yaml:"access_count,omitempty"`
	Collection   Collection `json:"collection" yaml:"collection"`
}

// EntityID returns the file id
func (f File) EntityID() string { return f.ID }

// WithID returns a copy of the file carrying the given id
func (f File) WithID(id string) File {
	f.ID = id
	return f
}

// SearchText returns the fields matched by free-text search
func (f File) SearchText() []string {
	return []string{f.Name, f.Source}
}

// StatusKey returns the kind, which the status filter matches for files
func (f File) StatusKey() string { return string(f.Kind) }

// SourceKey returns the platform label
func (f File) SourceKey() string { return f.Source }

// RecencyLabel returns the relative-time label used for recency ranking
func (f File) RecencyLabel() string { return f.LastModified }

// NumericField returns the value of a sortable numeric field
func (f File) NumericField(name string) (int, bool) {
	if name == "accessCount" {
		return f.AccessCount, true
	}
	return 0, false
}

// DisplayName returns the file name, used by name sorting
func (f File) DisplayName() string { return f.Name }

// SourceStyle maps a source label onto a palette key.
// Unknown sources fall back to "default".
func SourceStyle(source string) string {
	switch source {
	case SourceGoogleDrive:
		return "drive"
	case SourceDropbox:
		return "dropbox"
	case SourceOneDrive:
		return "onedrive"
	case SourceNotion:
		return "notion"
	case SourceSlack:
		return "slack"
	case SourceLocal:
		return "local"
	default:
		return "default"
	}
}
