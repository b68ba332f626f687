package container

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunContainerRepository struct {
	repo repository.Repository[*Container]
}

func NewBunContainerRepository(db *bun.DB) *BunContainerRepository {
	return NewBunContainerRepositoryWithCache(db, nil, nil)
}

// NewBunContainerRepositoryWithCache constructs a ContainerRepository with optional caching.
func NewBunContainerRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunContainerRepository {
	base := NewContainerRecordRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunContainerRepository{repo: wrapped}
}

func (r *BunContainerRepository) Create(ctx context.Context, record *Container) (*Container, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunContainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*Container, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "container", id.String())
	}
	return result, nil
}

func (r *BunContainerRepository) GetBySlug(ctx context.Context, slug string) (*Container, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "container", slug)
	}
	return result, nil
}

func (r *BunContainerRepository) List(ctx context.Context) ([]*Container, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

type BunUnitRepository struct {
	db   *bun.DB
	repo repository.Repository[*Unit]
}

func NewBunUnitRepository(db *bun.DB) *BunUnitRepository {
	return NewBunUnitRepositoryWithCache(db, nil, nil)
}

// NewBunUnitRepositoryWithCache constructs a UnitRepository with optional caching.
func NewBunUnitRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunUnitRepository {
	base := NewUnitRecordRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunUnitRepository{db: db, repo: wrapped}
}

func (r *BunUnitRepository) Create(ctx context.Context, record *Unit) (*Unit, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*Unit, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "unit", id.String())
	}
	return result, nil
}

// ListByContainer scopes the listing to one container, ordered by position.
func (r *BunUnitRepository) ListByContainer(ctx context.Context, containerID uuid.UUID) ([]*Unit, error) {
	var records []*Unit
	err := r.db.NewSelect().
		Model(&records).
		Where("container_id = ?", containerID).
		Order("position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("unit repository error: %w", err)
	}
	return records, nil
}

func (r *BunUnitRepository) Update(ctx context.Context, record *Unit) (*Unit, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "unit", record.ID.String())
	}
	return updated, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
