// Package config defines the format-agnostic model of a flow declaration
// and the Loader interface that format-specific frontends implement. The
// builder consumes this model without knowing what syntax it came from.
package config
