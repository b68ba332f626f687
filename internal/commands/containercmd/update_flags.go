package containercmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-studio/container"
	"github.com/goliatone/go-studio/internal/commands"
	"github.com/goliatone/go-studio/pkg/interfaces"
)

const updateUnitFlagsMessageType = "studio.unit.update_flags"

// UpdateUnitFlagsCommand mutates the visibility facets of a unit. Nil fields
// leave the stored value untouched.
type UpdateUnitFlagsCommand struct {
	UnitID        uuid.UUID  `json:"unit_id"`
	StaffOnly     *bool      `json:"staff_only,omitempty"`
	HiddenFromTOC *bool      `json:"hidden_from_toc,omitempty"`
	Gated         *bool      `json:"gated,omitempty"`
	UpdatedBy     *uuid.UUID `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (UpdateUnitFlagsCommand) Type() string { return updateUnitFlagsMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m UpdateUnitFlagsCommand) Validate() error {
	errs := validation.Errors{}
	if m.UnitID == uuid.Nil {
		errs["unit_id"] = validation.NewError("studio.unit.update_flags.unit_id_required", "unit_id is required")
	}
	if m.StaffOnly == nil && m.HiddenFromTOC == nil && m.Gated == nil {
		errs["flags"] = validation.NewError("studio.unit.update_flags.no_changes", "at least one flag must be provided")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUnitFlagsHandler updates unit visibility via the container service using the shared command handler foundation.
type UpdateUnitFlagsHandler struct {
	inner *commands.Handler[UpdateUnitFlagsCommand]
}

// NewUpdateUnitFlagsHandler constructs a handler wired to the provided container service.
func NewUpdateUnitFlagsHandler(service container.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateUnitFlagsCommand]) *UpdateUnitFlagsHandler {
	exec := func(ctx context.Context, msg UpdateUnitFlagsCommand) error {
		req := container.UpdatePublishFlagsRequest{
			UnitID:        msg.UnitID,
			StaffOnly:     msg.StaffOnly,
			HiddenFromTOC: msg.HiddenFromTOC,
			Gated:         msg.Gated,
		}
		if msg.UpdatedBy != nil {
			req.UpdatedBy = *msg.UpdatedBy
		}
		_, err := service.UpdatePublishFlags(ctx, req)
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdateUnitFlagsCommand]{
		commands.WithLogger[UpdateUnitFlagsCommand](logger),
		commands.WithOperation[UpdateUnitFlagsCommand]("unit.update_flags"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateUnitFlagsHandler{
		inner: commands.NewHandler[UpdateUnitFlagsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateUnitFlagsCommand].Execute.
func (h *UpdateUnitFlagsHandler) Execute(ctx context.Context, msg UpdateUnitFlagsCommand) error {
	return h.inner.Execute(ctx, msg)
}
