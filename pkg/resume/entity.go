package resume

// Document is the plain text pulled out of an uploaded résumé file.
type Document struct {
	Text  string
	Pages int
}

// Record holds the fields detected in résumé text. Empty strings mean
// "not found".
type Record struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Skills      []string `json:"skills"`
	PreviewText string   `json:"previewText"`
}

// Reader turns uploaded bytes into a Document.
type Reader interface {
	Read(filename string, data []byte) (Document, error)
}
