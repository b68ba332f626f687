package container

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryContainerRepository is an in-memory implementation for scaffolding and tests.
type MemoryContainerRepository struct {
	mu         sync.RWMutex
	containers map[uuid.UUID]*Container
	slugIndex  map[string]uuid.UUID
}

// NewMemoryContainerRepository creates an empty in-memory container repository.
func NewMemoryContainerRepository() *MemoryContainerRepository {
	return &MemoryContainerRepository{
		containers: make(map[uuid.UUID]*Container),
		slugIndex:  make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied container.
func (m *MemoryContainerRepository) Create(_ context.Context, record *Container) (*Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneContainer(record)
	m.containers[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneContainer(copied), nil
}

// GetByID retrieves a container by identifier.
func (m *MemoryContainerRepository) GetByID(_ context.Context, id uuid.UUID) (*Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.containers[id]
	if !ok {
		return nil, &NotFoundError{Resource: "container", Key: id.String()}
	}
	return cloneContainer(rec), nil
}

// GetBySlug retrieves a container by slug, returning NotFoundError when absent.
func (m *MemoryContainerRepository) GetBySlug(_ context.Context, slug string) (*Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "container", Key: slug}
	}
	return cloneContainer(m.containers[id]), nil
}

// List returns all containers.
func (m *MemoryContainerRepository) List(_ context.Context) ([]*Container, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Container, 0, len(m.containers))
	for _, rec := range m.containers {
		out = append(out, cloneContainer(rec))
	}
	return out, nil
}

// MemoryUnitRepository stores units in-memory.
type MemoryUnitRepository struct {
	mu    sync.RWMutex
	units map[uuid.UUID]*Unit
}

// NewMemoryUnitRepository constructs the repository.
func NewMemoryUnitRepository() *MemoryUnitRepository {
	return &MemoryUnitRepository{
		units: make(map[uuid.UUID]*Unit),
	}
}

// Create inserts the supplied unit.
func (m *MemoryUnitRepository) Create(_ context.Context, record *Unit) (*Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneUnit(record)
	m.units[copied.ID] = copied
	return cloneUnit(copied), nil
}

// GetByID retrieves a unit by identifier.
func (m *MemoryUnitRepository) GetByID(_ context.Context, id uuid.UUID) (*Unit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.units[id]
	if !ok {
		return nil, &NotFoundError{Resource: "unit", Key: id.String()}
	}
	return cloneUnit(rec), nil
}

// ListByContainer returns every unit belonging to the container.
func (m *MemoryUnitRepository) ListByContainer(_ context.Context, containerID uuid.UUID) ([]*Unit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Unit, 0)
	for _, rec := range m.units {
		if rec.ContainerID == containerID {
			out = append(out, cloneUnit(rec))
		}
	}
	return out, nil
}

// Update replaces the stored unit.
func (m *MemoryUnitRepository) Update(_ context.Context, record *Unit) (*Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.units[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "unit", Key: record.ID.String()}
	}
	copied := cloneUnit(record)
	m.units[copied.ID] = copied
	return cloneUnit(copied), nil
}

func cloneContainer(src *Container) *Container {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Units) > 0 {
		copied.Units = make([]*Unit, len(src.Units))
		for i, unit := range src.Units {
			copied.Units[i] = cloneUnit(unit)
		}
	}
	return &copied
}

func cloneUnit(src *Unit) *Unit {
	if src == nil {
		return nil
	}

	copied := *src
	copied.PublishAt = cloneTimePtr(src.PublishAt)
	copied.UnpublishAt = cloneTimePtr(src.UnpublishAt)
	copied.PublishedAt = cloneTimePtr(src.PublishedAt)
	copied.ReleaseDate = cloneTimePtr(src.ReleaseDate)
	if src.ReleaseWith != nil {
		with := *src.ReleaseWith
		copied.ReleaseWith = &with
	}
	return &copied
}
