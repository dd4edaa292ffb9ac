package keychain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/bnema/cc-quota/internal/ports"
)

const (
	DefaultService = "Claude Code-credentials"
	DefaultTimeout = 5 * time.Second

	securityPath = "/usr/bin/security"
)

var ErrUnavailable = errors.New("keychain unavailable on this platform")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Source reads the Claude Code OAuth payload from the macOS login keychain.
type Source struct {
	service string
	timeout time.Duration
	goos    string
	run     runFunc
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(service string, timeout time.Duration) *Source {
	if service == "" {
		service = DefaultService
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Source{
		service: service,
		timeout: timeout,
		goos:    runtime.GOOS,
		run:     runSecurityCommand,
	}
}

func (s *Source) Name() string {
	return "keychain"
}

func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.goos != "darwin" {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stdout, stderr, err := s.run(ctx, "find-generic-password", "-s", s.service, "-w")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("keychain lookup %q: %w", s.service, ctxErr)
		}
		return nil, formatError(s.service, err, stderr)
	}

	payload := strings.TrimSpace(stdout)
	if payload == "" {
		return nil, fmt.Errorf("keychain lookup %q: empty secret", s.service)
	}

	return []byte(payload), nil
}

func runSecurityCommand(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, securityPath, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(service string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("keychain lookup %q: %w", service, err)
	}

	return fmt.Errorf("keychain lookup %q: %w: %s", service, err, stderr)
}
