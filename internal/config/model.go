package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified representation of everything the user declared,
// regardless of source format.
type Model struct {
	Tasks []*Task
}

// Task is the format-agnostic representation of a single `task` block. It
// is the opaque payload carried through the execution graph: the graph core
// never looks inside it.
type Task struct {
	// Name addresses the task from depends_on lists and in rendered plans.
	Name string

	// Arguments holds the task's statically evaluated argument values.
	Arguments map[string]cty.Value

	// DependsOn names the tasks that must complete before this one, all of
	// which must be declared in the same flow.
	DependsOn []string

	// RunAfter holds external ordering labels. They relate the task to work
	// outside the declared flow and pass through to the plan untouched.
	RunAfter []string
}
