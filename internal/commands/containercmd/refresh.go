package containercmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/internal/commands"
	"github.com/goliatone/go-studio/pkg/interfaces"
)

const refreshContainerMessageType = "studio.container.refresh"

// RefreshContainerCommand re-renders a container view so downstream caches and
// listeners observe the current publish-state projection.
type RefreshContainerCommand struct {
	ContainerID uuid.UUID `json:"container_id"`
}

// Type implements command.Message.
func (RefreshContainerCommand) Type() string { return refreshContainerMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m RefreshContainerCommand) Validate() error {
	errs := validation.Errors{}
	if m.ContainerID == uuid.Nil {
		errs["container_id"] = validation.NewError("studio.container.refresh.container_id_required", "container_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RefreshContainerHandler renders containers via the container service using the shared command handler foundation.
type RefreshContainerHandler struct {
	inner *commands.Handler[RefreshContainerCommand]
}

// NewRefreshContainerHandler constructs a handler wired to the provided container service.
func NewRefreshContainerHandler(service container.Service, logger interfaces.Logger, opts ...commands.HandlerOption[RefreshContainerCommand]) *RefreshContainerHandler {
	exec := func(ctx context.Context, msg RefreshContainerCommand) error {
		_, err := service.RenderContainer(ctx, msg.ContainerID)
		return err
	}

	handlerOpts := []commands.HandlerOption[RefreshContainerCommand]{
		commands.WithLogger[RefreshContainerCommand](logger),
		commands.WithOperation[RefreshContainerCommand]("container.refresh"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RefreshContainerHandler{
		inner: commands.NewHandler[RefreshContainerCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RefreshContainerCommand].Execute.
func (h *RefreshContainerHandler) Execute(ctx context.Context, msg RefreshContainerCommand) error {
	return h.inner.Execute(ctx, msg)
}
