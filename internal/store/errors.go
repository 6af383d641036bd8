// Package store owns the resume document aggregate and is its sole mutation
// authority.
package store

import "fmt"

// UnknownCollectionError indicates an operation named a collection that does
// not exist on the document.
type UnknownCollectionError struct {
	Name string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Name)
}

// EntryTypeError indicates the entry value passed to an operation does not
// match the named collection's entry type.
type EntryTypeError struct {
	Collection string
	Got        string
}

func (e *EntryTypeError) Error() string {
	return fmt.Sprintf("collection %s cannot hold entry of type %s", e.Collection, e.Got)
}

// EntryNotFoundError indicates no entry with the given identifier exists in
// the named collection.
type EntryNotFoundError struct {
	Collection string
	ID         string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry %s not found in collection %s", e.ID, e.Collection)
}

// HobbyNotFoundError indicates a hobby index outside the current list.
type HobbyNotFoundError struct {
	Index  int
	Length int
}

func (e *HobbyNotFoundError) Error() string {
	return fmt.Sprintf("hobby index %d out of range (have %d hobbies)", e.Index, e.Length)
}

// UnknownSectionError indicates a section operation named an unrecognized
// section type or identifier.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// SectionNotOptionalError indicates a removal attempt on a core section.
// Core sections are always present and cannot be removed.
type SectionNotOptionalError struct {
	Section string
}

func (e *SectionNotOptionalError) Error() string {
	return fmt.Sprintf("section %s is not optional and cannot be removed", e.Section)
}

// NotPermutationError indicates a reorder input that is not an exact
// permutation of the current collection. The store rejects such inputs
// outright rather than silently dropping or inventing entries; a mismatch is
// a contract violation by the caller.
type NotPermutationError struct {
	Collection string
	Missing    []string
	Unknown    []string
}

func (e *NotPermutationError) Error() string {
	return fmt.Sprintf("reorder of %s is not a permutation (missing %v, unknown %v)",
		e.Collection, e.Missing, e.Unknown)
}
