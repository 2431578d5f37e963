package session

import (
	"sync"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Engine(1); ok {
		t.Error("Engine() = ok for unknown user")
	}

	s.SetEngine(1, "groq")
	engine, ok := s.Engine(1)
	if !ok || engine != "groq" {
		t.Errorf("Engine(1) = %q, %v, want %q, true", engine, ok, "groq")
	}

	s.SetEngine(1, "gemini")
	engine, _ = s.Engine(1)
	if engine != "gemini" {
		t.Errorf("Engine(1) = %q after overwrite, want %q", engine, "gemini")
	}

	if _, ok := s.Engine(2); ok {
		t.Error("Engine(2) = ok, preferences leaked between users")
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.SetEngine(id, "gemini")
			s.Engine(id)
		}(int64(i % 4))
	}
	wg.Wait()
}
