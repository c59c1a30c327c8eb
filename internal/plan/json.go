package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/graph"
)

// jsonRenderer emits the flattened task set as a JSON document.
type jsonRenderer struct{}

// jsonTask is the wire shape of one planned task.
type jsonTask struct {
	ID        uint32                     `json:"id"`
	Name      string                     `json:"name"`
	Arguments map[string]json.RawMessage `json:"arguments,omitempty"`
	After     []uint32                   `json:"after"`
	RunAfter  []string                   `json:"run_after,omitempty"`
}

type jsonPlan struct {
	Tasks []jsonTask `json:"tasks"`
}

func (r *jsonRenderer) Render(w io.Writer, g *graph.Graph[*config.Task]) error {
	set, err := g.Flatten()
	if err != nil {
		return err
	}

	doc := jsonPlan{Tasks: make([]jsonTask, 0, len(set))}
	for _, spec := range set {
		task := jsonTask{
			ID:    uint32(spec.ID),
			Name:  spec.Task.Name,
			After: make([]uint32, 0, len(spec.After)),
		}
		for _, id := range spec.After {
			task.After = append(task.After, uint32(id))
		}
		for _, cons := range spec.Constraints {
			task.RunAfter = append(task.RunAfter, fmt.Sprint(cons))
		}
		if len(spec.Task.Arguments) > 0 {
			task.Arguments = make(map[string]json.RawMessage, len(spec.Task.Arguments))
			names := make([]string, 0, len(spec.Task.Arguments))
			for name := range spec.Task.Arguments {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				val := spec.Task.Arguments[name]
				raw, err := ctyjson.Marshal(val, val.Type())
				if err != nil {
					return fmt.Errorf("encoding argument %q of task %q: %w", name, spec.Task.Name, err)
				}
				task.Arguments[name] = raw
			}
		}
		doc.Tasks = append(doc.Tasks, task)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
