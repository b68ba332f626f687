package library

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-studio/presentation"
)

// Unit is a reusable content block sourced from the studio's shared library.
// Units back the library-content picker: the studio lists them, previews
// their rendered body, and copies the selected unit into a container.
type Unit struct {
	ID                    uuid.UUID             `json:"id"`
	Slug                  string                `json:"slug"`
	Title                 string                `json:"title"`
	Tags                  []string              `json:"tags,omitempty"`
	Snapshot              presentation.Snapshot `json:"snapshot"`
	HasUnpublishedChanges bool                  `json:"has_unpublished_changes"`
	ReleaseDate           *time.Time            `json:"release_date,omitempty"`
	ReleaseWith           string                `json:"release_with,omitempty"`
	PreviewHTML           []byte                `json:"preview_html,omitempty"`
	SourcePath            string                `json:"source_path"`
}
