package phototable_test

import (
	"testing"

	"phototable"
)

// ---------------------------------------------------------------------------
// TestServicePool - Lazy creation, reuse, close
// ---------------------------------------------------------------------------

func TestServicePool(t *testing.T) {
	t.Parallel()

	t.Run("acquire and release reuses services", func(t *testing.T) {
		t.Parallel()

		pool := phototable.NewServicePool(2)
		defer func() { _ = pool.Close() }()

		first := pool.Acquire()
		if first == nil {
			t.Fatal("Acquire() = nil")
		}
		pool.Release(first)

		again := pool.Acquire()
		if again != first {
			t.Error("released service was not reused")
		}
		pool.Release(again)
	})

	t.Run("distinct services up to capacity", func(t *testing.T) {
		t.Parallel()

		pool := phototable.NewServicePool(2)
		defer func() { _ = pool.Close() }()

		a := pool.Acquire()
		b := pool.Acquire()
		if a == b {
			t.Error("expected two distinct services")
		}
		pool.Release(a)
		pool.Release(b)
	})

	t.Run("size clamps to one", func(t *testing.T) {
		t.Parallel()

		if got := phototable.NewServicePool(0).Size(); got != 1 {
			t.Errorf("Size() = %d, want 1", got)
		}
		if got := phototable.NewServicePool(-3).Size(); got != 1 {
			t.Errorf("Size() = %d, want 1", got)
		}
		if got := phototable.NewServicePool(4).Size(); got != 4 {
			t.Errorf("Size() = %d, want 4", got)
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		pool := phototable.NewServicePool(1)
		svc := pool.Acquire()
		pool.Release(svc)

		if err := pool.Close(); err != nil {
			t.Errorf("first Close() = %v", err)
		}
		if err := pool.Close(); err != nil {
			t.Errorf("second Close() = %v", err)
		}
	})

	t.Run("release after close does not block", func(t *testing.T) {
		t.Parallel()

		pool := phototable.NewServicePool(1)
		svc := pool.Acquire()
		if err := pool.Close(); err != nil {
			t.Errorf("Close() = %v", err)
		}
		pool.Release(svc) // must not panic or block
	})
}

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Explicit workers win, auto stays in bounds
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	t.Run("explicit workers", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{1, 3, 8, 12} {
			if got := phototable.ResolvePoolSize(n); got != n {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", n, got, n)
			}
		}
	})

	t.Run("auto within bounds", func(t *testing.T) {
		t.Parallel()

		got := phototable.ResolvePoolSize(0)
		if got < phototable.MinPoolSize || got > phototable.MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, phototable.MinPoolSize, phototable.MaxPoolSize)
		}
	})
}
