package loader

import (
	"context"
	"testing"
	"time"

	"github.com/Faultbox/meshkit/pkg/formats"
)

func TestCacheWatch(t *testing.T) {
	observeLogs(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "quad.obj", quadOBJ)

	c := NewCache(Options{Mode: formats.SynthesizeBoth})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type outcome struct {
		res *Result
		err error
	}
	outcomes := make(chan outcome, 64)
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, path, func(res *Result, err error) {
			select {
			case outcomes <- outcome{res, err}:
			default:
			}
		})
	}()

	timeout := time.After(5 * time.Second)

	select {
	case o := <-outcomes:
		if o.err != nil || o.res.Positions != 4 {
			t.Fatalf("unexpected initial load: %+v, %v", o.res, o.err)
		}
	case <-timeout:
		t.Fatal("timed out waiting for initial load")
	}

	writeFile(t, dir, "other.obj", "v 0 0 0\n")
	writeFile(t, dir, "quad.obj", quadOBJ+"v 9 9 9\n")

	// A rewrite may surface a truncated file first; wait for the complete one.
	for reloaded := false; !reloaded; {
		select {
		case o := <-outcomes:
			reloaded = o.err == nil && o.res.Positions == 5
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
