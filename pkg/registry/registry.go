// Package registry provides registration and lookup of built command schemas.
// It manages the schema set an application exposes to the platform and routes
// incoming raw option trees to the schema they belong to.
package registry

import (
	"fmt"
	"sync"

	"slashkit/pkg/registration"
	"slashkit/pkg/resolve"
	"slashkit/pkg/schema"
	"slashkit/pkg/slashtypes"
)

// Registry manages command schema registration and lookup. It provides
// thread-safe registration and retrieval of schemas by command name and
// preserves registration order for deterministic bulk compilation.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*slashtypes.CommandSchema
	order   []string
}

// New creates a new registry with an empty schema set.
func New() *Registry {
	return &Registry{
		schemas: make(map[string]*slashtypes.CommandSchema),
	}
}

// Register adds a built schema to the registry. Returns an error if the
// schema is nil, its name is empty, or a schema with the same name is
// already registered.
func (r *Registry) Register(cmd *slashtypes.CommandSchema) error {
	if cmd == nil {
		return fmt.Errorf("schema cannot be nil")
	}
	if cmd.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[cmd.Name]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name)
	}

	r.schemas[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// RegisterDescriptor builds a schema from a descriptor and registers it.
// Any construction violation is fatal: the full accumulated error list is
// returned and nothing is registered.
func (r *Registry) RegisterDescriptor(desc schema.CommandDescriptor) error {
	cmd, errs := schema.Build(desc)
	if len(errs) > 0 {
		return fmt.Errorf("command %s has %d schema errors, first: %w", desc.Name, len(errs), &errs[0])
	}
	return r.Register(cmd)
}

// Unregister removes a schema from the registry by command name.
// It does not error if the command is not registered.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; !exists {
		return
	}
	delete(r.schemas, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a schema by command name. Returns the schema and true if
// found, or nil and false otherwise.
func (r *Registry) Get(name string) (*slashtypes.CommandSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.schemas[name]
	return cmd, exists
}

// GetAll returns all registered schemas in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) GetAll() []*slashtypes.CommandSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemas := make([]*slashtypes.CommandSchema, 0, len(r.order))
	for _, name := range r.order {
		schemas = append(schemas, r.schemas[name])
	}
	return schemas
}

// Payloads compiles every registered schema into its registration payload,
// in registration order. Suitable for bulk command registration.
func (r *Registry) Payloads() []registration.Payload {
	schemas := r.GetAll()

	payloads := make([]registration.Payload, 0, len(schemas))
	for _, cmd := range schemas {
		payloads = append(payloads, registration.Compile(cmd))
	}
	return payloads
}

// Resolve routes a raw option tree to the named command's schema and
// resolves it. Returns an error if the command is not registered or if
// resolution fails.
func (r *Registry) Resolve(name string, raws []slashtypes.RawOption, bag *slashtypes.ResolvedBag) (*slashtypes.CommandModel, error) {
	cmd, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	return resolve.ResolveCommand(cmd, raws, bag)
}

// IsRegistered checks whether a command name is present in the registry.
func (r *Registry) IsRegistered(name string) bool {
	_, exists := r.Get(name)
	return exists
}
