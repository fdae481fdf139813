// Package mocks provides hand-written mock implementations of the
// store and service interfaces for testing. Each mock exposes function
// fields for customizable behavior and a simple in-memory default.
package mocks
