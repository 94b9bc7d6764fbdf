package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/fardannozami/health-coach/internal/domain"
)

type SecretPrompter interface {
	PromptSecret(ctx context.Context, label string) (string, error)
}

const credentialLabel = "Hugging Face API key"

// CredentialGate holds the API key for AI-backed actions. It lives as long
// as the flow that owns it and is never written anywhere.
type CredentialGate struct {
	prompter SecretPrompter

	mu  sync.Mutex
	key string
}

func NewCredentialGate(prompter SecretPrompter) *CredentialGate {
	return &CredentialGate{prompter: prompter}
}

// Key returns the cached key, prompting for it the first time. An empty
// answer yields domain.ErrCredentialRequired and leaves the gate closed.
func (g *CredentialGate) Key(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.key != "" {
		return g.key, nil
	}
	if g.prompter == nil {
		return "", domain.ErrCredentialRequired
	}

	key, err := g.prompter.PromptSecret(ctx, credentialLabel)
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.ErrCredentialRequired
	}

	g.key = key
	return key, nil
}

// Provide sets the key up front, e.g. from a command-line flag.
func (g *CredentialGate) Provide(key string) {
	g.mu.Lock()
	g.key = strings.TrimSpace(key)
	g.mu.Unlock()
}

func (g *CredentialGate) HasKey() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.key != ""
}

func (g *CredentialGate) Forget() {
	g.Provide("")
}
