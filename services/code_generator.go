package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/championship/brackets"
)

const (
	codeAlphabet    = "123456789abcdefghijklmnopqrstuvwxyz"
	codeLength      = 5
	maxCodeAttempts = 100
)

// CodeExistsFunc reports whether code is already assigned to a player.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// CodeGenerator hands out short registration codes.
type CodeGenerator struct {
	exists CodeExistsFunc
	rng    brackets.RandomSource
	now    func() time.Time
}

func NewCodeGenerator(exists CodeExistsFunc) *CodeGenerator {
	return &CodeGenerator{exists: exists, rng: sharedRandom{}, now: time.Now}
}

// Generate tries random codes until one is free. After maxCodeAttempts it
// gives up on checking and mixes the clock into the code.
func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := g.randomChars(codeLength)
		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check registration code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	stamp := strconv.FormatInt(g.now().UnixMilli(), 36)
	if len(stamp) > 2 {
		stamp = stamp[len(stamp)-2:]
	}
	code := g.randomChars(3) + stamp
	if len(code) > codeLength {
		code = code[:codeLength]
	}
	return code, nil
}

func (g *CodeGenerator) randomChars(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(codeAlphabet[g.rng.IntN(len(codeAlphabet))])
	}
	return b.String()
}
