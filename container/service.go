package container

import (
	"context"
	"sort"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-studio/internal/domain"
	"github.com/goliatone/go-studio/internal/identity"
	"github.com/goliatone/go-studio/internal/logging"
	"github.com/goliatone/go-studio/pkg/interfaces"
	"github.com/goliatone/go-studio/theme"
)

// Service exposes container view use-cases.
type Service interface {
	CreateContainer(ctx context.Context, req CreateContainerRequest) (*Container, error)
	GetContainer(ctx context.Context, id uuid.UUID) (*Container, error)
	AddUnit(ctx context.Context, req AddUnitRequest) (*Unit, error)
	GetUnit(ctx context.Context, id uuid.UUID) (*Unit, error)
	ListUnits(ctx context.Context, containerID uuid.UUID) ([]*Unit, error)
	RenderContainer(ctx context.Context, id uuid.UUID) (*View, error)
	UpdatePublishFlags(ctx context.Context, req UpdatePublishFlagsRequest) (*Unit, error)
}

// CreateContainerRequest captures the information required to create a container.
type CreateContainerRequest struct {
	Slug      string
	Title     string
	CreatedBy uuid.UUID
	UpdatedBy uuid.UUID
}

// AddUnitRequest captures the information required to append a unit to a container.
type AddUnitRequest struct {
	ContainerID   uuid.UUID
	Title         string
	Status        string
	Position      *int
	PublishAt     *time.Time
	UnpublishAt   *time.Time
	StaffOnly     bool
	HiddenFromTOC bool
	Gated         bool
	WarningCount  int
	ErrorCount    int
	ReleaseDate   *time.Time
	ReleaseWith   *string
	CreatedBy     uuid.UUID
	UpdatedBy     uuid.UUID
}

// UpdatePublishFlagsRequest mutates the visibility facets of a unit. Nil
// fields leave the stored value untouched.
type UpdatePublishFlagsRequest struct {
	UnitID        uuid.UUID
	StaffOnly     *bool
	HiddenFromTOC *bool
	Gated         *bool
	UpdatedBy     uuid.UUID
}

// ContainerRepository abstracts storage operations for container entities.
type ContainerRepository interface {
	Create(ctx context.Context, record *Container) (*Container, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Container, error)
	GetBySlug(ctx context.Context, slug string) (*Container, error)
	List(ctx context.Context) ([]*Container, error)
}

// UnitRepository abstracts storage operations for unit entities.
type UnitRepository interface {
	Create(ctx context.Context, record *Unit) (*Unit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	ListByContainer(ctx context.Context, containerID uuid.UUID) ([]*Unit, error)
	Update(ctx context.Context, record *Unit) (*Unit, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger == nil {
			s.logger = logging.NoOp()
			return
		}
		s.logger = logger
	}
}

// WithRenderer overrides the bar-module renderer.
func WithRenderer(renderer *theme.Renderer) ServiceOption {
	return func(s *service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

type service struct {
	containers ContainerRepository
	units      UnitRepository
	renderer   *theme.Renderer
	logger     interfaces.Logger
	now        func() time.Time
}

// NewService builds the container view service over the supplied repositories.
func NewService(containers ContainerRepository, units UnitRepository, opts ...ServiceOption) Service {
	s := &service{
		containers: containers,
		units:      units,
		renderer:   theme.NewRenderer(),
		logger:     logging.NoOp(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateContainer(ctx context.Context, req CreateContainerRequest) (*Container, error) {
	trimmed := strings.TrimSpace(req.Slug)
	if trimmed == "" {
		return nil, ErrContainerSlugRequired
	}
	if !slug.IsValid(trimmed) {
		return nil, ErrContainerSlugInvalid
	}

	if existing, err := s.containers.GetBySlug(ctx, trimmed); err == nil && existing != nil {
		return nil, ErrContainerSlugExists
	}

	now := s.now()
	record := &Container{
		// Slug-derived IDs keep container references stable across
		// imports and re-seeds of the same outline.
		ID:        identity.ContainerUUID(trimmed),
		Slug:      trimmed,
		Title:     strings.TrimSpace(req.Title),
		CreatedBy: req.CreatedBy,
		UpdatedBy: req.UpdatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.containers.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("container.create", "container_id", created.ID.String(), "slug", created.Slug)
	return created, nil
}

func (s *service) GetContainer(ctx context.Context, id uuid.UUID) (*Container, error) {
	if id == uuid.Nil {
		return nil, ErrContainerIDRequired
	}
	return s.containers.GetByID(ctx, id)
}

func (s *service) AddUnit(ctx context.Context, req AddUnitRequest) (*Unit, error) {
	if req.ContainerID == uuid.Nil {
		return nil, ErrContainerIDRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrUnitTitleRequired
	}
	status := chooseStatus(req.Status)
	if !isValidUnitStatus(status) {
		return nil, ErrUnitStatusInvalid
	}

	if _, err := s.containers.GetByID(ctx, req.ContainerID); err != nil {
		return nil, err
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		siblings, err := s.units.ListByContainer(ctx, req.ContainerID)
		if err != nil {
			return nil, err
		}
		position = len(siblings)
	}

	now := s.now()
	record := &Unit{
		ID:            uuid.New(),
		ContainerID:   req.ContainerID,
		Position:      position,
		Title:         strings.TrimSpace(req.Title),
		Status:        status,
		PublishAt:     cloneTimePtr(req.PublishAt),
		UnpublishAt:   cloneTimePtr(req.UnpublishAt),
		StaffOnly:     req.StaffOnly,
		HiddenFromTOC: req.HiddenFromTOC,
		Gated:         req.Gated,
		WarningCount:  req.WarningCount,
		ErrorCount:    req.ErrorCount,
		ReleaseDate:   cloneTimePtr(req.ReleaseDate),
		ReleaseWith:   req.ReleaseWith,
		CreatedBy:     req.CreatedBy,
		UpdatedBy:     req.UpdatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := s.units.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.decorateUnit(created), nil
}

func (s *service) GetUnit(ctx context.Context, id uuid.UUID) (*Unit, error) {
	if id == uuid.Nil {
		return nil, ErrUnitIDRequired
	}
	record, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorateUnit(record), nil
}

func (s *service) ListUnits(ctx context.Context, containerID uuid.UUID) ([]*Unit, error) {
	if containerID == uuid.Nil {
		return nil, ErrContainerIDRequired
	}
	records, err := s.units.ListByContainer(ctx, containerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Position < records[j].Position
	})
	for _, record := range records {
		s.decorateUnit(record)
	}
	return records, nil
}

func (s *service) RenderContainer(ctx context.Context, id uuid.UUID) (*View, error) {
	record, err := s.GetContainer(ctx, id)
	if err != nil {
		return nil, err
	}
	units, err := s.ListUnits(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	view := &View{
		Container: record,
		Modules:   make([]ModuleView, 0, len(units)),
	}
	for _, unit := range units {
		bar := s.renderer.BarModule(SnapshotForUnit(unit, now), releaseInfoForUnit(unit))
		view.Modules = append(view.Modules, ModuleView{Unit: unit, Bar: bar})

		switch bar.Variant {
		case domain.VariantBlue:
			view.Summary.Live++
		case domain.VariantGreen:
			view.Summary.Ready++
		case domain.VariantYellow:
			view.Summary.Warnings++
		case domain.VariantRed:
			view.Summary.Errors++
		case domain.VariantBlack:
			view.Summary.Restricted++
		default:
			view.Summary.Neutral++
		}
	}

	s.logger.Debug("container.render", "container_id", id.String(), "modules", len(view.Modules))
	return view, nil
}

func (s *service) UpdatePublishFlags(ctx context.Context, req UpdatePublishFlagsRequest) (*Unit, error) {
	if req.UnitID == uuid.Nil {
		return nil, ErrUnitIDRequired
	}
	record, err := s.units.GetByID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	if req.StaffOnly != nil {
		record.StaffOnly = *req.StaffOnly
	}
	if req.HiddenFromTOC != nil {
		record.HiddenFromTOC = *req.HiddenFromTOC
	}
	if req.Gated != nil {
		record.Gated = *req.Gated
	}
	record.UpdatedBy = req.UpdatedBy
	record.UpdatedAt = s.now()

	updated, err := s.units.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("container.unit.flags",
		"unit_id", updated.ID.String(),
		"staff_only", updated.StaffOnly,
		"hidden_from_toc", updated.HiddenFromTOC,
		"gated", updated.Gated,
	)
	return s.decorateUnit(updated), nil
}

func (s *service) decorateUnit(record *Unit) *Unit {
	if record == nil {
		return nil
	}
	record.EffectiveStatus = effectiveUnitStatus(record, s.now())
	return record
}

func releaseInfoForUnit(unit *Unit) theme.ReleaseInfo {
	info := theme.ReleaseInfo{}
	if unit == nil {
		return info
	}
	if unit.ReleaseDate != nil {
		info.Date = unit.ReleaseDate.Format("Jan 02, 2006")
	}
	if unit.ReleaseWith != nil {
		info.With = strings.TrimSpace(*unit.ReleaseWith)
	}
	return info
}

func chooseStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return string(domain.StatusDraft)
	}
	return strings.ToLower(status)
}

func isValidUnitStatus(status string) bool {
	switch domain.Status(status) {
	case domain.StatusDraft, domain.StatusReady, domain.StatusLive, domain.StatusArchived:
		return true
	}
	return false
}

func cloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
