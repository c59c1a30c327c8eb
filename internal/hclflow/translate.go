package hclflow

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/schema"
)

// translateTask converts the HCL-specific task schema into the agnostic
// model, evaluating argument expressions statically.
func translateTask(s *schema.Task) (*config.Task, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("task name must not be empty")
	}

	args, err := extractArguments(s)
	if err != nil {
		return nil, err
	}

	return &config.Task{
		Name:      s.Name,
		Arguments: args,
		DependsOn: s.DependsOn,
		RunAfter:  s.RunAfter,
	}, nil
}

// extractArguments evaluates the free-form attributes of the task's
// arguments block. Only static values are allowed: a flow declares a plan,
// it does not compute one.
func extractArguments(s *schema.Task) (map[string]cty.Value, error) {
	if s.Arguments == nil || s.Arguments.Body == nil {
		return nil, nil
	}

	attrs, diags := s.Arguments.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("task %q arguments: %w", s.Name, diags)
	}

	out := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("task %q argument %q: %w", s.Name, name, diags)
		}
		out[name] = val
	}
	return out, nil
}
