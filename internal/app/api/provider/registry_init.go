package provider

import (
	"fmt"
	"sort"
	"sync"
)

// ProviderCreator is a function that creates a provider from configuration
type ProviderCreator func(config map[string]interface{}) (TranscriptionProvider, error)

// providerCreators stores provider creation functions
var (
	providerCreators = make(map[string]ProviderCreator)
	creatorsMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	creatorsMutex.Lock()
	defer creatorsMutex.Unlock()
	providerCreators[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	creatorsMutex.RLock()
	defer creatorsMutex.RUnlock()

	creator, ok := providerCreators[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// CreateProvider builds a provider of the given registered type
func CreateProvider(providerType string, config map[string]interface{}) (TranscriptionProvider, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}
	return creator(config)
}

// ListRegisteredProviders returns all registered provider types
func ListRegisteredProviders() []string {
	creatorsMutex.RLock()
	defer creatorsMutex.RUnlock()

	providers := make([]string, 0, len(providerCreators))
	for providerType := range providerCreators {
		providers = append(providers, providerType)
	}
	sort.Strings(providers)
	return providers
}
