// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the auth handshake, friend-list assembly, and
// bulk removal into a single process lifecycle with scoped session teardown.
package client
