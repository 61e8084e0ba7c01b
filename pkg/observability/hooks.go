// Package observability provides hooks for metrics, tracing, and logging.
//
// The catalog libraries never log. Instead they report events through the
// hooks registered here, so a binary can attach whatever backend it uses
// without the libraries depending on it.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResourceHooks(&myResourceHooks{})
//	    observability.SetCatalogHooks(&myCatalogHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	text, err := inflate(data)
//	observability.Resource().OnInflate(name, len(data), len(text), time.Since(start), err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Resource Hooks
// =============================================================================

// ResourceHooks receives events from the embedded resource table.
type ResourceHooks interface {
	// OnInflate records the first decompression of an embedded resource.
	// It fires at most once per resource per process.
	OnInflate(name string, compressed, inflated int, duration time.Duration, err error)
}

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from the network catalog.
type CatalogHooks interface {
	// OnMaterialize records construction of a network model for a spec.
	OnMaterialize(spec string, nodes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResourceHooks is a no-op implementation of ResourceHooks.
type NoopResourceHooks struct{}

func (NoopResourceHooks) OnInflate(string, int, int, time.Duration, error) {}

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnMaterialize(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resourceHooks ResourceHooks = NoopResourceHooks{}
	catalogHooks  CatalogHooks  = NoopCatalogHooks{}
	hooksMu       sync.RWMutex
)

// SetResourceHooks registers custom resource hooks.
// This should be called once at application startup before any resource is read.
func SetResourceHooks(h ResourceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resourceHooks = h
	}
}

// SetCatalogHooks registers custom catalog hooks.
// This should be called once at application startup before any network is built.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// Resource returns the registered resource hooks.
func Resource() ResourceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resourceHooks
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resourceHooks = NoopResourceHooks{}
	catalogHooks = NoopCatalogHooks{}
}
