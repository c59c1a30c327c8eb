// Package schema declares the HCL shapes of a user's flow files. These
// structs exist purely for decoding; the loader translates them into the
// format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// TaskArgs represents the content of the 'arguments' block within a task.
// The body is kept raw because argument names are free-form.
type TaskArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Task represents a `task` block from a user's flow file: one unit of work
// plus its ordering declarations.
type Task struct {
	Name      string    `hcl:"name,label"`
	Arguments *TaskArgs `hcl:"arguments,block"`
	DependsOn []string  `hcl:"depends_on,optional"`
	RunAfter  []string  `hcl:"run_after,optional"`
}

// FlowConfig represents the top-level structure of a flow file.
type FlowConfig struct {
	Tasks []*Task  `hcl:"task,block"`
	Body  hcl.Body `hcl:",remain"`
}
