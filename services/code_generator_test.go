package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Format(t *testing.T) {
	g := NewCodeGenerator(func(context.Context, string) (bool, error) { return false, nil })

	for i := 0; i < 200; i++ {
		code, err := g.Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, code, 5)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected %q in %s", c, code)
		}
	}
}

func TestCodeGenerator_RetriesTakenCodes(t *testing.T) {
	calls := 0
	g := NewCodeGenerator(func(context.Context, string) (bool, error) {
		calls++
		return calls < 4, nil
	})

	code, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, 5)
	assert.Equal(t, 4, calls)
}

func TestCodeGenerator_FallbackAfterMaxAttempts(t *testing.T) {
	calls := 0
	g := NewCodeGenerator(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})
	g.now = func() time.Time { return time.UnixMilli(36*36*7 + 36*3 + 5) }

	code, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, maxCodeAttempts, calls)
	require.Len(t, code, 5)
	assert.Equal(t, "35", code[3:])
}

func TestCodeGenerator_LookupError(t *testing.T) {
	g := NewCodeGenerator(func(context.Context, string) (bool, error) { return false, errors.New("db down") })

	_, err := g.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
