package container

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewContainerRecordRepository(db *bun.DB) repository.Repository[*Container] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Container]{
		NewRecord: func() *Container { return &Container{} },
		GetID: func(c *Container) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Container, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(c *Container) string {
			return c.Slug
		},
	})
}

func NewUnitRecordRepository(db *bun.DB) repository.Repository[*Unit] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Unit]{
		NewRecord: func() *Unit { return &Unit{} },
		GetID: func(u *Unit) uuid.UUID {
			return u.ID
		},
		SetID: func(u *Unit, id uuid.UUID) {
			u.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(u *Unit) string {
			if u == nil {
				return ""
			}
			return u.ID.String()
		},
	})
}
