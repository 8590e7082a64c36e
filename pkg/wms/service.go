package wms

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Service is the query surface of a workload-management system backend.
type Service interface {
	// Report returns the run reports matching the query plus an optional
	// free-text message from the service. When runID is empty, the query
	// covers all runs for user (or the calling user, backend-defined)
	// within the last histDays days. passThru is forwarded to the backend
	// verbatim.
	Report(ctx context.Context, runID, user string, histDays float64, passThru string) ([]RunReport, string, error)
}

// Options carries backend connection settings resolved from config.
type Options struct {
	Endpoint string
	APIKey   string
}

// Factory builds a Service from connection options.
type Factory func(opts Options) (Service, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a backend available under name. Backends register
// themselves from init; duplicate names panic to surface the wiring bug
// at startup.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("wms: backend %q registered twice", name))
	}
	registry[name] = factory
}

// New resolves a backend name to a Service. Unknown names report the
// registered alternatives.
func New(name string, opts Options) (Service, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown WMS backend %q (registered: %s)", name, strings.Join(registeredNames(), ", "))
	}
	return factory(opts)
}

func registeredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
