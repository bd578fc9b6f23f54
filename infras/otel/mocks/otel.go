package mocks

import (
	"context"
	"sync"

	"lodge/infras/otel"
)

// Otel hands out in-memory scopes so tests can check what a call traced.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

// Scopes returns every scope opened so far, in order.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Scope(nil), o.scopes...)
}

// Errors collects the errors traced on any scope.
func (o *Otel) Errors() []error {
	var errs []error

	for _, scope := range o.Scopes() {
		errs = append(errs, scope.Errors()...)
	}

	return errs
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Otel {
	return &Otel{}
}
