// Package catalog contains the built-in lesson set.
//
// Each lesson lives in its own file, named by number and slug:
//
//   - l01_hello_world.go
//   - l02_variables.go
//   - ...
//
// A lesson file declares one exported lesson.Descriptor plus the run
// function and any helpers the demonstration needs. All returns the
// descriptors in curriculum order; nothing in this package keeps global
// state, so tests can build registries from any subset.
package catalog
