// Package config defines the format-agnostic model of a run file: where the
// inputs of each puzzle live and which part to answer by default. It also
// defines the Loader interface implemented by concrete formats such as HCL.
package config
