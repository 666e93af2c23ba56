// Package memory provides in-memory implementations of driven ports.
// They back tests and run the application when nothing should touch disk.
package memory
