package history

import (
	"time"

	"github.com/awrigley/markwright/internal/document"
)

// Document is one tracked markdown file.
type Document struct {
	Path      string    `json:"path"`
	OpenedAt  time.Time `json:"opened_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OpenCount int       `json:"open_count"`
}

// Snapshot is a point-in-time record of a document's metrics, taken
// whenever the document is analyzed.
type Snapshot struct {
	ID        int64            `json:"id"`
	Path      string           `json:"path"`
	Metrics   document.Metrics `json:"metrics"`
	CreatedAt time.Time        `json:"created_at"`
}
