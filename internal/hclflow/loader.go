package hclflow

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/fsutil"
	"github.com/vk/flowgraphgo/internal/schema"
)

// Loader implements config.Loader for HCL flow files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL flow loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every flow file reachable from the given paths, in
// deterministic order, and merges their tasks into one model. A path may be
// a single .hcl file or a directory searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &config.Model{}
	for _, path := range paths {
		files, err := l.resolve(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Resolved flow path.", "path", path, "files", len(files))

		for _, file := range files {
			tasks, err := l.loadFile(file)
			if err != nil {
				return nil, err
			}
			model.Tasks = append(model.Tasks, tasks...)
		}
	}

	logger.Debug("Flow files loaded.", "tasks_found", len(model.Tasks))
	return model, nil
}

// resolve expands a path into the flow files it denotes.
func (l *Loader) resolve(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("flow path %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("searching %q for flow files: %w", path, err)
	}
	return files, nil
}

// loadFile parses and translates a single flow file.
func (l *Loader) loadFile(path string) ([]*config.Task, error) {
	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var flow schema.FlowConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &flow); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	tasks := make([]*config.Task, 0, len(flow.Tasks))
	for _, st := range flow.Tasks {
		task, err := translateTask(st)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
