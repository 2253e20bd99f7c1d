// Package polyzero implements polylog.Logger on top of zerolog.
package polyzero
