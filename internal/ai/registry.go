package ai

import (
	"fmt"
	"sort"
)

const (
	EngineGemini = "gemini"
	EngineGroq   = "groq"
)

// Registry holds the configured engines and the default selection.
type Registry struct {
	engines     map[string]Engine
	defaultName string
}

func NewRegistry(defaultName string) *Registry {
	return &Registry{
		engines:     make(map[string]Engine),
		defaultName: defaultName,
	}
}

func (r *Registry) Register(e Engine) {
	r.engines[e.Name()] = e
}

// Get resolves an engine by name. An empty or unknown name falls back to
// the default engine; if that is missing too, any registered engine wins.
func (r *Registry) Get(name string) (Engine, error) {
	if e, ok := r.engines[name]; ok {
		return e, nil
	}
	if e, ok := r.engines[r.defaultName]; ok {
		return e, nil
	}
	for _, e := range r.engines {
		return e, nil
	}
	return nil, fmt.Errorf("no engines registered")
}

// Names lists registered engines in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.engines)
}
