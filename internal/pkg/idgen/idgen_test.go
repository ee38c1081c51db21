package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/monster-codex/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("ai")
	assert.Equal(t, "ai_1", gen.Generate())
	assert.Equal(t, "ai_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("ai")
	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "ai_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, strings.TrimPrefix(first, "ai_"), 36)
}
