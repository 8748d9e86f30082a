package core

// Logger is the narrow logging interface taken by scene builders
type Logger interface {
	Printf(format string, args ...interface{})
}
