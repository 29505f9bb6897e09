//go:build cgo

// Package main is the foreign-callable surface of gopme, built as a C
// shared library:
//
//	go build -buildmode=c-shared -o libgopme.so ./capi
//
// Two parallel precision variants are exported: the D family operates in
// float64 and the F family in float32. Handles returned by the create
// functions identify solver instances across calls.
//
// Boundary error convention: any failure inside a call is logged to the
// standard error stream and the process terminates with exit status 1.
// No error code or partial result ever crosses the boundary — for a
// library embedded in long-running numerical codes, corrupt results are
// worse than termination.
package main
