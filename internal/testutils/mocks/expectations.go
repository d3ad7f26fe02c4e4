// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-perception/internal/repositories/worlds"
	worldsmock "github.com/KirkDiggler/rpg-perception/internal/repositories/worlds/mock"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// ExpectWorldLoad makes the repository return def at the given revision
func ExpectWorldLoad(ctx context.Context, repo *worldsmock.MockRepository, def *world.Definition, revision int64) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, worlds.GetInput{WorldID: def.ID}).
		Return(&worlds.GetOutput{Record: &worlds.Record{
			Definition: def,
			Revision:   revision,
			UpdatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}}, nil)
}

// ExpectWorldSave accepts a Put of def and reports the given revision
func ExpectWorldSave(ctx context.Context, repo *worldsmock.MockRepository, def *world.Definition, revision int64) *gomock.Call {
	return repo.EXPECT().
		Put(ctx, worlds.PutInput{Definition: def}).
		Return(&worlds.PutOutput{Record: &worlds.Record{
			Definition: def,
			Revision:   revision,
			UpdatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}}, nil)
}
