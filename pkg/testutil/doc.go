// Package testutil provides helpers shared by the package tests: temporary
// files and an isolated XDG environment.
package testutil
