package mocks

import (
	"context"
	"maps"
	"sync"

	"adscape/infras/otel"
)

// NewOtel returns a tracer whose scopes do nothing.
func NewOtel() otel.Otel {
	return noopOtel{}
}

// NewScope returns a scope that does nothing.
func NewScope() otel.Scope {
	return noopScope{}
}

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

type noopScope struct{}

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}

// Recorder keeps what was traced so tests can assert on it.
type Recorder struct {
	mu         sync.Mutex
	Spans      []string
	Errors     []error
	Attributes map[string]any
}

func NewRecorder() *Recorder {
	return &Recorder{Attributes: map[string]any{}}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Spans = append(r.Spans, spanName)

	return ctx, recordingScope{recorder: r}
}

func (r *Recorder) Shutdown(context.Context) error {
	return nil
}

// Snapshot copies the recorded errors and attributes.
func (r *Recorder) Snapshot() ([]error, map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.Errors...), maps.Clone(r.Attributes)
}

type recordingScope struct {
	noopScope

	recorder *Recorder
}

func (s recordingScope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.Errors = append(s.recorder.Errors, err)
}

func (s recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s recordingScope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.Attributes[key] = value
}

func (s recordingScope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
