// Package dsext is a minimal stand-in for the database-extension glue
// the allocator was originally embedded in: code that packs a list of
// variable-length values into one allocator-backed buffer with an
// offset table pointing at each value, so a second process can decode
// them without copying. It exists only to give buddy.Allocator a second,
// non-CLI caller; it does not attempt to model query execution, param
// lists, or any other PostgreSQL-specific machinery.
package dsext
