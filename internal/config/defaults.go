package config

// Defaults mirror option.Default so a missing config file changes nothing.
const (
	DefaultTemplate = "bar-cur-max"
	DefaultSymbols  = "dot8"
	DefaultWidth    = "fill"
	DefaultMax      = 100
)

// FileName is the config file name searched for, without extension.
const FileName = "bardot"
