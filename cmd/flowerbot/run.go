package main

import (
	"context"
	"fmt"
	"os"
)

// lifecycleApp is the part of *fx.App driven by run.
type lifecycleApp interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts the application and blocks until ctx is cancelled or fx asks to
// shut down, then stops it.
func run(ctx context.Context, app lifecycleApp) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}
