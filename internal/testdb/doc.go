// Package testdb provides utilities specifically for database integration tests.
// It only depends on store interfaces and standard database packages, not on
// specific store implementations.
package testdb
