package keychain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadUsesSecurityFindGenericPassword(t *testing.T) {
	t.Parallel()

	source := &Source{
		service: DefaultService,
		timeout: time.Second,
		goos:    "darwin",
		run: func(ctx context.Context, args ...string) (string, string, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, []string{"find-generic-password", "-s", "Claude Code-credentials", "-w"}, args)
			return "{\"claudeAiOauth\":{}}\n", "", nil
		},
	}

	payload, err := source.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"claudeAiOauth":{}}`, string(payload))
}

func TestSourceReadIsUnavailableOffDarwin(t *testing.T) {
	t.Parallel()

	source := &Source{
		service: DefaultService,
		timeout: time.Second,
		goos:    "linux",
		run: func(ctx context.Context, args ...string) (string, string, error) {
			t.Fatal("security must not run off darwin")
			return "", "", nil
		},
	}

	_, err := source.Read(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSourceReadReturnsClearError(t *testing.T) {
	t.Parallel()

	source := &Source{
		service: DefaultService,
		timeout: time.Second,
		goos:    "darwin",
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "The specified item could not be found in the keychain.", errors.New("exit status 44")
		},
	}

	_, err := source.Read(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "keychain lookup")
	assert.ErrorContains(t, err, "could not be found")
}

func TestSourceReadRejectsEmptySecret(t *testing.T) {
	t.Parallel()

	source := &Source{
		service: DefaultService,
		timeout: time.Second,
		goos:    "darwin",
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "  \n", "", nil
		},
	}

	_, err := source.Read(context.Background())
	require.ErrorContains(t, err, "empty secret")
}

func TestSourceReadTimesOut(t *testing.T) {
	t.Parallel()

	source := &Source{
		service: DefaultService,
		timeout: 20 * time.Millisecond,
		goos:    "darwin",
		run: func(ctx context.Context, args ...string) (string, string, error) {
			<-ctx.Done()
			return "", "", errors.New("signal: killed")
		},
	}

	_, err := source.Read(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewSourceAppliesDefaults(t *testing.T) {
	t.Parallel()

	source := NewSource("", 0)
	assert.Equal(t, DefaultService, source.service)
	assert.Equal(t, DefaultTimeout, source.timeout)
	assert.Equal(t, "keychain", source.Name())
}
