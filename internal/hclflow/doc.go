// Package hclflow is the HCL frontend for flow declarations. It discovers
// and parses .hcl flow files and translates them into the format-agnostic
// config model, leaving all graph semantics to the builder.
package hclflow
