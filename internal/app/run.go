package app

import (
	"context"
	"fmt"

	"github.com/vk/flowgraphgo/internal/builder"
	"github.com/vk/flowgraphgo/internal/ctxlog"
)

// Run performs one planning pass: load the flow, build the dependency
// graph, flatten it and render the plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "flow_path", a.config.FlowPath)

	model, err := a.loader.Load(ctx, a.config.FlowPath)
	if err != nil {
		return fmt.Errorf("failed to load flow: %w", err)
	}

	if len(model.Tasks) == 0 {
		a.logger.Warn("No tasks found in flow, nothing to plan.")
		return nil
	}

	g, err := builder.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "node_count", g.Len())

	if err := a.renderer.Render(a.outW, g); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}

	a.logger.Debug("App.Run finished.")
	return nil
}
