package ui

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/app"
	teaui "tableflip.dev/daybook/pkg/tui/app"
)

// UI opens the interactive terminal interface.
type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return fmt.Errorf("ui: no service")
	}
	return teaui.Run(ctx, u.Service)
}
