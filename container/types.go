package container

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-studio/internal/domain"
	"github.com/goliatone/go-studio/theme"
)

// Container is the canonical record for an editable page of content units.
type Container struct {
	bun.BaseModel `bun:"table:containers,alias:ct"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Slug      string     `bun:"slug,notnull" json:"slug"`
	Title     string     `bun:"title,notnull" json:"title"`
	CreatedBy uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID  `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Units []*Unit `bun:"rel:has-many,join:id=container_id" json:"units,omitempty"`
}

// Unit is a composable content block rendered inside a container. Publishing
// and visibility facets are stored flat so the view layer can derive a
// presentation snapshot without extra lookups.
type Unit struct {
	bun.BaseModel `bun:"table:units,alias:u"`

	ID            uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	ContainerID   uuid.UUID  `bun:"container_id,notnull,type:uuid" json:"container_id"`
	Position      int        `bun:"position,notnull,default:0" json:"position"`
	Title         string     `bun:"title,notnull" json:"title"`
	Status        string     `bun:"status,notnull,default:'draft'" json:"status"`
	PublishAt     *time.Time `bun:"publish_at,nullzero" json:"publish_at,omitempty"`
	UnpublishAt   *time.Time `bun:"unpublish_at,nullzero" json:"unpublish_at,omitempty"`
	PublishedAt   *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	StaffOnly     bool       `bun:"staff_only,notnull,default:false" json:"staff_only"`
	HiddenFromTOC bool       `bun:"hidden_from_toc,notnull,default:false" json:"hidden_from_toc"`
	Gated         bool       `bun:"gated,notnull,default:false" json:"gated"`
	WarningCount  int        `bun:"warning_count,notnull,default:0" json:"warning_count"`
	ErrorCount    int        `bun:"error_count,notnull,default:0" json:"error_count"`
	ReleaseDate   *time.Time `bun:"release_date,nullzero" json:"release_date,omitempty"`
	ReleaseWith   *string    `bun:"release_with" json:"release_with,omitempty"`
	CreatedBy     uuid.UUID  `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy     uuid.UUID  `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	DeletedAt     *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	EffectiveStatus domain.Status `bun:"-" json:"effective_status"`
}

// ModuleView pairs a unit with its resolved bar module.
type ModuleView struct {
	Unit *Unit           `json:"unit"`
	Bar  theme.BarModule `json:"bar"`
}

// Summary aggregates per-variant counts for the container header.
type Summary struct {
	Live       int `json:"live"`
	Ready      int `json:"ready"`
	Warnings   int `json:"warnings"`
	Errors     int `json:"errors"`
	Restricted int `json:"restricted"`
	Neutral    int `json:"neutral"`
}

// View is the fully-decorated container page: the container record plus one
// module view per unit, ordered by position.
type View struct {
	Container *Container   `json:"container"`
	Modules   []ModuleView `json:"modules"`
	Summary   Summary      `json:"summary"`
}
