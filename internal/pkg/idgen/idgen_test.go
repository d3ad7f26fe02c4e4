package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-perception/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("req")
	assert.Equal(t, "req_1", gen.Generate())
	assert.Equal(t, "req_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("req").Generate()
	assert.True(t, strings.HasPrefix(id, "req_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "req_"))
	assert.NoError(t, err)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}
