// Package script is the boundary between recorded function calls and a
// script handler. A Dispatcher looks up the argument and return value specs
// for each call and hands the handler a Context carrying them.
package script
