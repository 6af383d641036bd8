//nolint:revive // types is a standard Go package name pattern
package types

// Entry is implemented by every identified collection entry. AssignID is only
// called by the store at creation time or by the normalizer for imported
// entries that lack an identifier; identifiers are never reassigned.
type Entry interface {
	EntryID() string
	AssignID(id string)
}

// EntryID returns the entry's stable identifier.
func (e Education) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Education) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Employment) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Employment) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Skill) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Skill) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Language) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Language) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Course) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Course) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Internship) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Internship) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e ExtracurricularActivity) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *ExtracurricularActivity) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Reference) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Reference) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Quality) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Quality) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Certificate) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Certificate) AssignID(id string) { e.ID = id }

// EntryID returns the entry's stable identifier.
func (e Achievement) EntryID() string { return e.ID }

// AssignID sets the entry's identifier.
func (e *Achievement) AssignID(id string) { e.ID = id }
