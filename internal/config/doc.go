// Package config loads and validates tinymd YAML configuration.
//
// A configuration file looks like:
//
//	output:
//	  dir: build/html
//	heading:
//	  policy: clamp
//	filter:
//	  policy: literal
//	workers: 4
//
// All fields are optional. Fields a file leaves out stay empty so that
// environment variables and flags can still fill them; ApplyDefaults then
// sets the remaining policies.
package config
