// Package schema provides the principal schematics for all other packages. It
// defines the [Node] structure of the simulated hierarchy and provides
// implementations for handling the few (Unix-based) operating system calls
// the surrounding tooling needs, such as reading import files or detecting a
// terminal.
package schema
