// Package storage provides the operating-system implementations of the
// filesystem and clock contracts declared by the stateful store packages.
package storage
