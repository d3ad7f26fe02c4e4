// Package errors provides structured errors for rpg-perception.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. They convert to and from gRPC status errors, with metadata sent
// as a structpb.Struct detail.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("observer id is required").WithMeta("world_id", worldID)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load world")
//	}
//
// # Validation Errors
//
// World documents are validated field by field before a snapshot is built:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("rooms[0].id", room.ID, vb)
//	errors.ValidateUnitInterval("rooms[0].multipliers.Visual", m, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Layer-Specific Guidelines
//
// World construction returns InvalidArgument with per-field metadata.
// Repositories return NotFound and wrap storage failures as Internal.
// Handlers convert to gRPC with ToGRPCError.
//
// The perception core itself never fails once a snapshot exists: seeing
// nothing is an empty result, not an error.
package errors
