package ai

import (
	"context"
	"reflect"
	"testing"

	"voicebrief/pkg/failover"
)

type stubEngine struct {
	name string
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Transcribe(ctx context.Context, target failover.Target, audioPath, mimeType string) (string, error) {
	return "", nil
}

func (s *stubEngine) Summarize(ctx context.Context, target failover.Target, text string) (string, error) {
	return "", nil
}

func (s *stubEngine) SpeechTargets() (failover.Target, failover.Target) {
	return failover.Target{Name: s.name, Primary: true}, failover.Target{Name: s.name}
}

func (s *stubEngine) SummaryTargets() (failover.Target, failover.Target) {
	return s.SpeechTargets()
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry(EngineGemini)
	r.Register(&stubEngine{name: EngineGemini})
	r.Register(&stubEngine{name: EngineGroq})

	tests := []struct {
		name string
		want string
	}{
		{"gemini", EngineGemini},
		{"groq", EngineGroq},
		{"", EngineGemini},
		{"unknown", EngineGemini},
	}

	for _, tt := range tests {
		e, err := r.Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", tt.name, err)
		}
		if e.Name() != tt.want {
			t.Errorf("Get(%q) = %s, want %s", tt.name, e.Name(), tt.want)
		}
	}
}

func TestRegistryGetWithoutDefault(t *testing.T) {
	r := NewRegistry(EngineGemini)
	r.Register(&stubEngine{name: EngineGroq})

	e, err := r.Get("gemini")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if e.Name() != EngineGroq {
		t.Errorf("Get() = %s, want the only registered engine", e.Name())
	}
}

func TestRegistryGetEmpty(t *testing.T) {
	r := NewRegistry(EngineGemini)
	if _, err := r.Get("gemini"); err == nil {
		t.Fatal("Get() on empty registry should fail")
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry(EngineGemini)
	r.Register(&stubEngine{name: EngineGroq})
	r.Register(&stubEngine{name: EngineGemini})

	want := []string{EngineGemini, EngineGroq}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}
