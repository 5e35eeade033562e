package protocol_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/ouvidoria/plataforma-denuncias/internal/app/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	ano := time.Now().Year()
	pattern := regexp.MustCompile(fmt.Sprintf(`^DEN-%d-[A-Z0-9]{6}$`, ano))

	t.Run("matches the protocol format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			codigo, err := protocol.Generate(protocol.PrefixoDenuncia)
			require.NoError(t, err)
			assert.Regexp(t, pattern, codigo)
		}
	})

	t.Run("uses the given prefix", func(t *testing.T) {
		codigo, err := protocol.Generate(protocol.PrefixoSugestao)
		require.NoError(t, err)
		assert.Regexp(t, fmt.Sprintf(`^SUG-%d-[A-Z0-9]{6}$`, ano), codigo)
	})
}

func TestGenerateUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the first free code", func(t *testing.T) {
		calls := 0
		exists := func(ctx context.Context, protocolo string) (bool, error) {
			calls++
			return false, nil
		}

		codigo, err := protocol.GenerateUnique(ctx, protocol.PrefixoDenuncia, exists)
		require.NoError(t, err)
		assert.NotEmpty(t, codigo)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries on collision", func(t *testing.T) {
		calls := 0
		exists := func(ctx context.Context, protocolo string) (bool, error) {
			calls++
			return calls < 3, nil
		}

		codigo, err := protocol.GenerateUnique(ctx, protocol.PrefixoDenuncia, exists)
		require.NoError(t, err)
		assert.NotEmpty(t, codigo)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the attempt limit", func(t *testing.T) {
		calls := 0
		exists := func(ctx context.Context, protocolo string) (bool, error) {
			calls++
			return true, nil
		}

		codigo, err := protocol.GenerateUnique(ctx, protocol.PrefixoDenuncia, exists)
		assert.ErrorIs(t, err, protocol.ErrTentativasEsgotadas)
		assert.Empty(t, codigo)
		assert.Equal(t, protocol.MaxTentativas, calls)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		lookupErr := errors.New("db offline")
		exists := func(ctx context.Context, protocolo string) (bool, error) {
			return false, lookupErr
		}

		_, err := protocol.GenerateUnique(ctx, protocol.PrefixoDenuncia, exists)
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		exists := func(ctx context.Context, protocolo string) (bool, error) {
			return true, nil
		}

		_, err := protocol.GenerateUnique(cancelled, protocol.PrefixoDenuncia, exists)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
