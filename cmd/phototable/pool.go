package main

import (
	"context"

	"phototable"
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input phototable.Input) (*phototable.Result, error)
}

// Compile-time interface implementation check.
var _ Generator = (*phototable.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Generator
	Release(Generator)
	Size() int
}

// servicePool adapts phototable.ServicePool to the Pool interface.
type servicePool struct {
	inner *phototable.ServicePool
}

func newServicePool(size int, opts ...phototable.Option) *servicePool {
	return &servicePool{inner: phototable.NewServicePool(size, opts...)}
}

func (p *servicePool) Acquire() Generator { return p.inner.Acquire() }

func (p *servicePool) Release(g Generator) {
	if svc, ok := g.(*phototable.Service); ok {
		p.inner.Release(svc)
	}
}

func (p *servicePool) Size() int { return p.inner.Size() }

func (p *servicePool) Close() error { return p.inner.Close() }
