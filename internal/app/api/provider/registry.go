package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrNoDefaultProvider = errors.New("no default provider set")
)

// HealthCheckTimeout bounds each provider check run by HealthCheckAll
const HealthCheckTimeout = 10 * time.Second

// DefaultProviderRegistry holds the providers built from configuration.
// The first registered provider is the default until SetDefaultProvider
// picks another.
type DefaultProviderRegistry struct {
	mu          sync.RWMutex
	providers   map[string]TranscriptionProvider
	defaultName string
}

func NewProviderRegistry() *DefaultProviderRegistry {
	return &DefaultProviderRegistry{
		providers: make(map[string]TranscriptionProvider),
	}
}

// RegisterProvider validates p and stores it under name
func (r *DefaultProviderRegistry) RegisterProvider(name string, p TranscriptionProvider) error {
	switch {
	case name == "":
		return fmt.Errorf("provider name cannot be empty")
	case p == nil:
		return fmt.Errorf("provider %q cannot be nil", name)
	}

	if err := p.ValidateConfiguration(); err != nil {
		return fmt.Errorf("provider validation failed for %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}
	r.providers[name] = p
	if r.defaultName == "" {
		r.defaultName = name
	}
	return nil
}

func (r *DefaultProviderRegistry) GetProvider(name string) (TranscriptionProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(name)
}

// ListProviders returns the registered names in sorted order
func (r *DefaultProviderRegistry) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *DefaultProviderRegistry) GetDefaultProvider() (TranscriptionProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.defaultName == "" {
		return nil, ErrNoDefaultProvider
	}
	return r.lookup(r.defaultName)
}

// DefaultProviderName returns the registered name of the default provider,
// or "" when nothing is registered
func (r *DefaultProviderRegistry) DefaultProviderName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

func (r *DefaultProviderRegistry) SetDefaultProvider(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.lookup(name); err != nil {
		return err
	}
	r.defaultName = name
	return nil
}

// HealthCheckAll checks every provider concurrently. Each check gets at most
// HealthCheckTimeout. A nil entry means healthy.
func (r *DefaultProviderRegistry) HealthCheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]TranscriptionProvider, len(r.providers))
	for name, p := range r.providers {
		snapshot[name] = p
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]error, len(snapshot))
	)
	for name, p := range snapshot {
		wg.Add(1)
		go func(name string, p TranscriptionProvider) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
			defer cancel()
			err := p.HealthCheck(checkCtx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()

	return results
}

// lookup expects r.mu to be held
func (r *DefaultProviderRegistry) lookup(name string) (TranscriptionProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, name)
	}
	return p, nil
}
