package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/graph"
)

// textRenderer prints one line per task, in schedulable order.
type textRenderer struct{}

func (r *textRenderer) Render(w io.Writer, g *graph.Graph[*config.Task]) error {
	collector := &Collector{}
	if _, err := graph.Convert[*config.Task, string](g, collector); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Flow plan: %d tasks\n", len(collector.Entries)); err != nil {
		return err
	}
	for i, entry := range collector.Entries {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d. %s", i+1, entry.Name)
		if len(entry.After) > 0 {
			fmt.Fprintf(&sb, "  after=[%s]", strings.Join(entry.After, ", "))
		}
		if len(entry.RunAfter) > 0 {
			fmt.Fprintf(&sb, "  run_after=[%s]", strings.Join(entry.RunAfter, ", "))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
