// Package perception implements the perception orchestrator: it keeps world
// definitions in storage and answers what characters can see in them
package perception

//go:generate mockgen -destination=mock/mock_service.go -package=perceptionmock github.com/KirkDiggler/rpg-perception/internal/orchestrators/perception Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-perception/internal/repositories/worlds"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// Service defines the interface for perception operations
type Service interface {
	// World storage
	SaveWorld(ctx context.Context, input *SaveWorldInput) (*SaveWorldOutput, error)
	GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error)
	DeleteWorld(ctx context.Context, input *DeleteWorldInput) (*DeleteWorldOutput, error)
	ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error)

	// Perception
	DescribeRoom(ctx context.Context, input *DescribeRoomInput) (*DescribeRoomOutput, error)
	NarrateAction(ctx context.Context, input *NarrateActionInput) (*NarrateActionOutput, error)
}

// Config holds the dependencies for the perception orchestrator
type Config struct {
	WorldRepo   worlds.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type cachedSnapshot struct {
	revision int64
	snap     *world.Snapshot
}

type orchestrator struct {
	worldRepo worlds.Repository
	idGen     idgen.Generator

	// built snapshots by world id; a stale revision is rebuilt on demand
	mu        sync.RWMutex
	snapshots map[string]cachedSnapshot
}

// NewOrchestrator creates a new perception orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		worldRepo: cfg.WorldRepo,
		idGen:     cfg.IDGenerator,
		snapshots: make(map[string]cachedSnapshot),
	}, nil
}

// SaveWorld validates a definition by building it, then stores it
func (o *orchestrator) SaveWorld(ctx context.Context, input *SaveWorldInput) (*SaveWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Definition == nil {
		return nil, errors.InvalidArgument("definition is required")
	}

	snap, err := world.Build(input.Definition)
	if err != nil {
		return nil, err
	}

	out, err := o.worldRepo.Put(ctx, worlds.PutInput{Definition: input.Definition})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save world %s", input.Definition.ID)
	}

	o.remember(snap.ID, out.Record.Revision, snap)

	slog.Info("World saved",
		"world_id", snap.ID,
		"revision", out.Record.Revision,
		"rooms", len(snap.Rooms()),
		"characters", len(snap.Characters()),
	)

	return &SaveWorldOutput{
		WorldID:  snap.ID,
		Revision: out.Record.Revision,
	}, nil
}

// GetWorld returns the stored definition of a world
func (o *orchestrator) GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	out, err := o.worldRepo.Get(ctx, worlds.GetInput{WorldID: input.WorldID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get world %s", input.WorldID)
	}

	return &GetWorldOutput{
		Definition: out.Record.Definition,
		Revision:   out.Record.Revision,
		UpdatedAt:  out.Record.UpdatedAt,
	}, nil
}

// DeleteWorld removes a world from storage and from the snapshot cache
func (o *orchestrator) DeleteWorld(ctx context.Context, input *DeleteWorldInput) (*DeleteWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	if _, err := o.worldRepo.Delete(ctx, worlds.DeleteInput{WorldID: input.WorldID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete world %s", input.WorldID)
	}

	o.mu.Lock()
	delete(o.snapshots, input.WorldID)
	o.mu.Unlock()

	slog.Info("World deleted", "world_id", input.WorldID)

	return &DeleteWorldOutput{}, nil
}

// ListWorlds returns the ids of every stored world
func (o *orchestrator) ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.worldRepo.List(ctx, worlds.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worlds")
	}

	return &ListWorldsOutput{WorldIDs: out.WorldIDs}, nil
}

// DescribeRoom describes everything the observer can see
func (o *orchestrator) DescribeRoom(ctx context.Context, input *DescribeRoomInput) (*DescribeRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("world_id", input.WorldID, vb)
	errors.ValidateRequired("observer_id", input.ObserverID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	snap, revision, err := o.snapshot(ctx, input.WorldID)
	if err != nil {
		return nil, err
	}

	desc, err := percept.DescribeRoom(snap, input.ObserverID)
	if err != nil {
		return nil, err
	}

	slog.Info("Room described",
		"request_id", o.idGen.Generate(),
		"world_id", input.WorldID,
		"observer_id", input.ObserverID,
		"visible", len(desc.Observations),
		"people", desc.Tally.Total,
	)

	return &DescribeRoomOutput{
		Text:     desc.Text,
		Zones:    desc.Zones,
		Tally:    desc.Tally,
		Revision: revision,
	}, nil
}

// NarrateAction renders a combat sentence for everyone who can see it
func (o *orchestrator) NarrateAction(ctx context.Context, input *NarrateActionInput) (*NarrateActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("world_id", input.WorldID, vb)
	errors.ValidateRequired("template", input.Template, vb)
	errors.ValidateRequired("attacker_id", input.AttackerID, vb)
	errors.ValidateRequired("defendant_id", input.DefendantID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	snap, _, err := o.snapshot(ctx, input.WorldID)
	if err != nil {
		return nil, err
	}

	n, err := percept.NarrateToAudience(snap, input.Template, input.AttackerID, input.DefendantID)
	if err != nil {
		return nil, err
	}

	slog.Info("Action narrated",
		"request_id", o.idGen.Generate(),
		"world_id", input.WorldID,
		"attacker_id", input.AttackerID,
		"defendant_id", input.DefendantID,
		"bystanders", len(n.Bystanders),
	)

	return &NarrateActionOutput{
		Attacker:   n.Attacker,
		Defendant:  n.Defendant,
		Bystanders: n.Bystanders,
	}, nil
}

// snapshot returns a built snapshot of the latest stored revision
func (o *orchestrator) snapshot(ctx context.Context, worldID string) (*world.Snapshot, int64, error) {
	out, err := o.worldRepo.Get(ctx, worlds.GetInput{WorldID: worldID})
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to load world %s", worldID)
	}
	revision := out.Record.Revision

	o.mu.RLock()
	cached, ok := o.snapshots[worldID]
	o.mu.RUnlock()
	if ok && cached.revision == revision {
		return cached.snap, revision, nil
	}

	snap, err := world.Build(out.Record.Definition)
	if err != nil {
		// stored worlds built when they were saved
		return nil, 0, errors.WrapWithCode(err, errors.CodeInternal, "stored world no longer builds")
	}
	o.remember(worldID, revision, snap)

	return snap, revision, nil
}

func (o *orchestrator) remember(worldID string, revision int64, snap *world.Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if cached, ok := o.snapshots[worldID]; ok && cached.revision > revision {
		return
	}
	o.snapshots[worldID] = cachedSnapshot{revision: revision, snap: snap}
}
