// Package v1alpha1 serves the perception orchestrator over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/orchestrators/perception"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// HandlerConfig holds dependencies for the perception handler
type HandlerConfig struct {
	PerceptionService perception.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.PerceptionService == nil {
		return errors.InvalidArgument("perception service is required")
	}
	return nil
}

// Handler implements PerceptionServiceServer
type Handler struct {
	service perception.Service
}

var _ PerceptionServiceServer = (*Handler)(nil)

// NewHandler creates a new perception handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.PerceptionService}, nil
}

// SaveWorld stores a world document: {"world": {...}}
func (h *Handler) SaveWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in SaveWorldRequest
	if err := DecodeStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if len(in.World) == 0 || string(in.World) == "null" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("world is required"))
	}

	// JSON is valid YAML, so the file loader's schema checks apply unchanged
	def, err := world.Decode(in.World)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SaveWorld(ctx, &perception.SaveWorldInput{Definition: def})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&SaveWorldResponse{WorldID: out.WorldID, Revision: out.Revision})
}

// GetWorld returns a stored world: {"world_id"}
func (h *Handler) GetWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in WorldRequest
	if err := DecodeStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetWorld(ctx, &perception.GetWorldInput{WorldID: in.WorldID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetWorldResponse{
		World:     out.Definition,
		Revision:  out.Revision,
		UpdatedAt: out.UpdatedAt,
	})
}

// DeleteWorld removes a stored world: {"world_id"}
func (h *Handler) DeleteWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in WorldRequest
	if err := DecodeStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.service.DeleteWorld(ctx, &perception.DeleteWorldInput{WorldID: in.WorldID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// ListWorlds lists stored world ids
func (h *Handler) ListWorlds(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.service.ListWorlds(ctx, &perception.ListWorldsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	ids := out.WorldIDs
	if ids == nil {
		ids = []string{}
	}
	return respond(&ListWorldsResponse{WorldIDs: ids})
}

// DescribeRoom describes what a character sees: {"world_id", "observer_id"}
func (h *Handler) DescribeRoom(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in DescribeRoomRequest
	if err := DecodeStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.DescribeRoom(ctx, &perception.DescribeRoomInput{
		WorldID:    in.WorldID,
		ObserverID: in.ObserverID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DescribeRoomResponse{
		Text:     out.Text,
		Zones:    out.Zones,
		Tally:    out.Tally,
		Revision: out.Revision,
	})
}

// NarrateAction renders a combat template for every audience:
// {"world_id", "template", "attacker_id", "defendant_id"}
func (h *Handler) NarrateAction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in NarrateActionRequest
	if err := DecodeStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.NarrateAction(ctx, &perception.NarrateActionInput{
		WorldID:     in.WorldID,
		Template:    in.Template,
		AttackerID:  in.AttackerID,
		DefendantID: in.DefendantID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&NarrateActionResponse{
		Attacker:   out.Attacker,
		Defendant:  out.Defendant,
		Bystanders: out.Bystanders,
	})
}

func respond(v interface{}) (*structpb.Struct, error) {
	s, err := EncodeStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return s, nil
}
