// Package store owns the resume document aggregate and is its sole mutation
// authority.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Snapshot is an immutable copy of the aggregate taken at a point in time.
// Exports and subscribers work from snapshots so in-flight renders never
// observe later edits. Version identifies the mutation the snapshot reflects.
type Snapshot struct {
	Document      types.Document      `json:"document"`
	Sections      []types.Section     `json:"sections"`
	StyleSettings types.StyleSettings `json:"styleSettings"`
	Version       uint64              `json:"-"`
}

// Store holds the document, section registry, and style settings as one
// coherent state. Every operation leaves the aggregate's invariants intact:
// entry identifiers stay unique, section order values stay consistent, and
// hiding a section never touches its backing data.
type Store struct {
	mu          sync.Mutex
	doc         types.Document
	sections    []types.Section
	styles      types.StyleSettings
	version     uint64
	dirty       bool
	lastSaved   time.Time
	subscribers []func(Snapshot)
}

// New returns a store initialized with an empty document, the default section
// registry, and default style settings.
func New() *Store {
	return &Store{
		doc:      types.NewDocument(),
		sections: types.DefaultSections(),
		styles:   types.DefaultStyleSettings(),
	}
}

// NewFromSnapshot returns a store initialized from previously persisted state.
func NewFromSnapshot(snap Snapshot) *Store {
	s := New()
	if len(snap.Sections) > 0 {
		s.sections = types.CloneSections(snap.Sections)
	}
	if snap.StyleSettings.TemplateID != "" {
		s.styles = snap.StyleSettings
	}
	s.doc = snap.Document.Clone()
	return s
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// successful mutation. Callbacks run outside the store's lock.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Dirty reports whether the aggregate has unsaved changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSaved returns the time of the most recent MarkClean, or the zero time.
func (s *Store) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// MarkClean clears the dirty flag and stamps the last-saved time. Document
// content is unaffected and subscribers are not notified.
func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
	s.lastSaved = time.Now()
}

// MarkCleanVersion clears the dirty flag only if no mutation has happened
// since the snapshot with the given version was taken. A persister that just
// wrote an older snapshot must not mark newer, unsaved edits clean.
func (s *Store) MarkCleanVersion(version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != version {
		return
	}
	s.dirty = false
	s.lastSaved = time.Now()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Document:      s.doc.Clone(),
		Sections:      types.CloneSections(s.sections),
		StyleSettings: s.styles,
		Version:       s.version,
	}
}

// mutate runs fn under the lock and, if it succeeds, marks the state dirty
// and notifies subscribers with a snapshot taken before the lock is released.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.version++
	s.dirty = true
	snap := s.snapshotLocked()
	subs := append(([]func(Snapshot))(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
	return nil
}

// UpdatePersonalDetails replaces the personal details block.
func (s *Store) UpdatePersonalDetails(details types.PersonalDetails) {
	_ = s.mutate(func() error {
		s.doc.PersonalDetails = details
		return nil
	})
}

// UpdateProfile replaces the profile text.
func (s *Store) UpdateProfile(profile string) {
	_ = s.mutate(func() error {
		s.doc.Profile = profile
		return nil
	})
}

// UpdateFooter replaces the footer text.
func (s *Store) UpdateFooter(description string) {
	_ = s.mutate(func() error {
		s.doc.Footer.Description = description
		return nil
	})
}

// AddEntry assigns a fresh unique identifier to the entry, appends it to the
// end of the named collection, and returns the identifier. The entry value
// must be a pointer to the collection's entry type.
func (s *Store) AddEntry(c types.Collection, e types.Entry) (string, error) {
	id := uuid.NewString()
	err := s.mutate(func() error {
		e.AssignID(id)
		switch c {
		case types.CollectionEducation:
			v, ok := e.(*types.Education)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Education = append(s.doc.Education, *v)
		case types.CollectionEmployment:
			v, ok := e.(*types.Employment)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Employment = append(s.doc.Employment, *v)
		case types.CollectionSkills:
			v, ok := e.(*types.Skill)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Skills = append(s.doc.Skills, *v)
		case types.CollectionLanguages:
			v, ok := e.(*types.Language)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Languages = append(s.doc.Languages, *v)
		case types.CollectionCourses:
			v, ok := e.(*types.Course)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Courses = append(s.doc.Courses, *v)
		case types.CollectionInternships:
			v, ok := e.(*types.Internship)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Internships = append(s.doc.Internships, *v)
		case types.CollectionExtracurricularActivities:
			v, ok := e.(*types.ExtracurricularActivity)
			if !ok {
				return typeError(c, e)
			}
			s.doc.ExtracurricularActivities = append(s.doc.ExtracurricularActivities, *v)
		case types.CollectionReferences:
			v, ok := e.(*types.Reference)
			if !ok {
				return typeError(c, e)
			}
			s.doc.References = append(s.doc.References, *v)
		case types.CollectionQualities:
			v, ok := e.(*types.Quality)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Qualities = append(s.doc.Qualities, *v)
		case types.CollectionCertificates:
			v, ok := e.(*types.Certificate)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Certificates = append(s.doc.Certificates, *v)
		case types.CollectionAchievements:
			v, ok := e.(*types.Achievement)
			if !ok {
				return typeError(c, e)
			}
			s.doc.Achievements = append(s.doc.Achievements, *v)
		default:
			return &UnknownCollectionError{Name: string(c)}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateEntry replaces the fields of the entry matching id with those of e.
// The existing identifier is always preserved, even if e carries a different
// one. A missing id is reported as EntryNotFoundError.
func (s *Store) UpdateEntry(c types.Collection, id string, e types.Entry) error {
	return s.mutate(func() error {
		var found bool
		switch c {
		case types.CollectionEducation:
			v, ok := e.(*types.Education)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Education, id, *v)
		case types.CollectionEmployment:
			v, ok := e.(*types.Employment)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Employment, id, *v)
		case types.CollectionSkills:
			v, ok := e.(*types.Skill)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Skills, id, *v)
		case types.CollectionLanguages:
			v, ok := e.(*types.Language)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Languages, id, *v)
		case types.CollectionCourses:
			v, ok := e.(*types.Course)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Courses, id, *v)
		case types.CollectionInternships:
			v, ok := e.(*types.Internship)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Internships, id, *v)
		case types.CollectionExtracurricularActivities:
			v, ok := e.(*types.ExtracurricularActivity)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.ExtracurricularActivities, id, *v)
		case types.CollectionReferences:
			v, ok := e.(*types.Reference)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.References, id, *v)
		case types.CollectionQualities:
			v, ok := e.(*types.Quality)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Qualities, id, *v)
		case types.CollectionCertificates:
			v, ok := e.(*types.Certificate)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Certificates, id, *v)
		case types.CollectionAchievements:
			v, ok := e.(*types.Achievement)
			if !ok {
				return typeError(c, e)
			}
			found = replaceEntry(s.doc.Achievements, id, *v)
		default:
			return &UnknownCollectionError{Name: string(c)}
		}
		if !found {
			return &EntryNotFoundError{Collection: string(c), ID: id}
		}
		return nil
	})
}

// DeleteEntry removes the entry matching id from the named collection.
// Deleting an absent id is a no-op, not an error.
func (s *Store) DeleteEntry(c types.Collection, id string) error {
	return s.mutate(func() error {
		switch c {
		case types.CollectionEducation:
			s.doc.Education = removeEntry(s.doc.Education, id)
		case types.CollectionEmployment:
			s.doc.Employment = removeEntry(s.doc.Employment, id)
		case types.CollectionSkills:
			s.doc.Skills = removeEntry(s.doc.Skills, id)
		case types.CollectionLanguages:
			s.doc.Languages = removeEntry(s.doc.Languages, id)
		case types.CollectionCourses:
			s.doc.Courses = removeEntry(s.doc.Courses, id)
		case types.CollectionInternships:
			s.doc.Internships = removeEntry(s.doc.Internships, id)
		case types.CollectionExtracurricularActivities:
			s.doc.ExtracurricularActivities = removeEntry(s.doc.ExtracurricularActivities, id)
		case types.CollectionReferences:
			s.doc.References = removeEntry(s.doc.References, id)
		case types.CollectionQualities:
			s.doc.Qualities = removeEntry(s.doc.Qualities, id)
		case types.CollectionCertificates:
			s.doc.Certificates = removeEntry(s.doc.Certificates, id)
		case types.CollectionAchievements:
			s.doc.Achievements = removeEntry(s.doc.Achievements, id)
		default:
			return &UnknownCollectionError{Name: string(c)}
		}
		return nil
	})
}

// ReorderEntries replaces the collection's order to match the given sequence
// of entry identifiers. The input must be an exact permutation of the current
// entries; anything else is rejected with NotPermutationError and the
// collection is left unchanged.
func (s *Store) ReorderEntries(c types.Collection, ids []string) error {
	return s.mutate(func() error {
		switch c {
		case types.CollectionEducation:
			out, err := reorderByID(c, s.doc.Education, ids)
			if err != nil {
				return err
			}
			s.doc.Education = out
		case types.CollectionEmployment:
			out, err := reorderByID(c, s.doc.Employment, ids)
			if err != nil {
				return err
			}
			s.doc.Employment = out
		case types.CollectionSkills:
			out, err := reorderByID(c, s.doc.Skills, ids)
			if err != nil {
				return err
			}
			s.doc.Skills = out
		case types.CollectionLanguages:
			out, err := reorderByID(c, s.doc.Languages, ids)
			if err != nil {
				return err
			}
			s.doc.Languages = out
		case types.CollectionCourses:
			out, err := reorderByID(c, s.doc.Courses, ids)
			if err != nil {
				return err
			}
			s.doc.Courses = out
		case types.CollectionInternships:
			out, err := reorderByID(c, s.doc.Internships, ids)
			if err != nil {
				return err
			}
			s.doc.Internships = out
		case types.CollectionExtracurricularActivities:
			out, err := reorderByID(c, s.doc.ExtracurricularActivities, ids)
			if err != nil {
				return err
			}
			s.doc.ExtracurricularActivities = out
		case types.CollectionReferences:
			out, err := reorderByID(c, s.doc.References, ids)
			if err != nil {
				return err
			}
			s.doc.References = out
		case types.CollectionQualities:
			out, err := reorderByID(c, s.doc.Qualities, ids)
			if err != nil {
				return err
			}
			s.doc.Qualities = out
		case types.CollectionCertificates:
			out, err := reorderByID(c, s.doc.Certificates, ids)
			if err != nil {
				return err
			}
			s.doc.Certificates = out
		case types.CollectionAchievements:
			out, err := reorderByID(c, s.doc.Achievements, ids)
			if err != nil {
				return err
			}
			s.doc.Achievements = out
		default:
			return &UnknownCollectionError{Name: string(c)}
		}
		return nil
	})
}

// AddHobby appends a hobby to the end of the list.
func (s *Store) AddHobby(hobby string) {
	_ = s.mutate(func() error {
		s.doc.Hobbies = append(s.doc.Hobbies, hobby)
		return nil
	})
}

// UpdateHobby replaces the hobby at the given position.
func (s *Store) UpdateHobby(index int, hobby string) error {
	return s.mutate(func() error {
		if index < 0 || index >= len(s.doc.Hobbies) {
			return &HobbyNotFoundError{Index: index, Length: len(s.doc.Hobbies)}
		}
		s.doc.Hobbies[index] = hobby
		return nil
	})
}

// DeleteHobby removes the hobby at the given position.
func (s *Store) DeleteHobby(index int) error {
	return s.mutate(func() error {
		if index < 0 || index >= len(s.doc.Hobbies) {
			return &HobbyNotFoundError{Index: index, Length: len(s.doc.Hobbies)}
		}
		s.doc.Hobbies = append(s.doc.Hobbies[:index], s.doc.Hobbies[index+1:]...)
		return nil
	})
}

// ToggleSection flips visibility for the section of the given type.
func (s *Store) ToggleSection(t types.SectionType) error {
	return s.mutate(func() error {
		for i := range s.sections {
			if s.sections[i].Type == t {
				s.sections[i].IsVisible = !s.sections[i].IsVisible
				return nil
			}
		}
		return &UnknownSectionError{Section: string(t)}
	})
}

// RemoveSection hides the optional section of the given type. Removal is a
// visibility change, never a data deletion: the backing collection is
// untouched and toggling the section visible again restores it in full.
func (s *Store) RemoveSection(t types.SectionType) error {
	return s.mutate(func() error {
		for i := range s.sections {
			if s.sections[i].Type == t {
				if !s.sections[i].IsOptional {
					return &SectionNotOptionalError{Section: string(t)}
				}
				s.sections[i].IsVisible = false
				return nil
			}
		}
		return &UnknownSectionError{Section: string(t)}
	})
}

// ReorderSections re-derives every section's order from its position in the
// given type sequence. Hidden and visible sections may be interleaved, but
// the input must cover every registered section exactly once.
func (s *Store) ReorderSections(order []types.SectionType) error {
	return s.mutate(func() error {
		index := make(map[types.SectionType]int, len(s.sections))
		for i, sec := range s.sections {
			index[sec.Type] = i
		}
		used := make(map[types.SectionType]bool, len(order))
		var unknown []string
		reordered := make([]types.Section, 0, len(s.sections))
		for pos, t := range order {
			i, ok := index[t]
			if !ok || used[t] {
				unknown = append(unknown, string(t))
				continue
			}
			used[t] = true
			sec := s.sections[i]
			sec.Order = pos
			reordered = append(reordered, sec)
		}
		var missing []string
		for _, sec := range s.sections {
			if !used[sec.Type] {
				missing = append(missing, string(sec.Type))
			}
		}
		if len(unknown) > 0 || len(missing) > 0 {
			return &NotPermutationError{Collection: "sections", Missing: missing, Unknown: unknown}
		}
		s.sections = reordered
		return nil
	})
}

// RenameSection sets the title of the section with the given registry id.
func (s *Store) RenameSection(id, title string) error {
	return s.mutate(func() error {
		for i := range s.sections {
			if s.sections[i].ID == id {
				s.sections[i].Title = title
				return nil
			}
		}
		return &UnknownSectionError{Section: id}
	})
}

// TogglePageBreak flips the page-break flag for exactly one section.
func (s *Store) TogglePageBreak(id string) error {
	return s.mutate(func() error {
		for i := range s.sections {
			if s.sections[i].ID == id {
				s.sections[i].HasPageBreak = !s.sections[i].HasPageBreak
				return nil
			}
		}
		return &UnknownSectionError{Section: id}
	})
}

// UpdateStyleSettings merges the patch into the style settings. The merged
// result must validate; otherwise the settings are left unchanged.
func (s *Store) UpdateStyleSettings(patch types.StylePatch) error {
	return s.mutate(func() error {
		merged := s.styles.Apply(patch)
		if err := merged.Validate(); err != nil {
			return err
		}
		s.styles = merged
		return nil
	})
}

// SetTemplate switches the active template.
func (s *Store) SetTemplate(templateID string) error {
	return s.UpdateStyleSettings(types.StylePatch{TemplateID: &templateID})
}

// ImportDocument replaces the document, leaving the section registry and
// style settings as they are.
func (s *Store) ImportDocument(doc types.Document) {
	_ = s.mutate(func() error {
		s.doc = doc.Clone()
		return nil
	})
}

// ImportDocumentWithDerivedVisibility replaces the document and resets the
// registry to defaults, with each optional section visible exactly when its
// backing collection is non-empty (for footer: when its text is non-blank).
// Core sections are always visible regardless of content. This is the one
// place visibility is derived from data rather than explicit user action.
func (s *Store) ImportDocumentWithDerivedVisibility(doc types.Document) {
	_ = s.mutate(func() error {
		s.doc = doc.Clone()
		sections := types.DefaultSections()
		for i := range sections {
			if !sections[i].IsOptional {
				sections[i].IsVisible = true
				continue
			}
			sections[i].IsVisible = s.doc.HasOptionalSectionData(sections[i].Type)
		}
		s.sections = sections
		return nil
	})
}

// Reset replaces the whole aggregate with defaults and leaves the state
// clean.
func (s *Store) Reset() {
	s.mu.Lock()
	s.doc = types.NewDocument()
	s.sections = types.DefaultSections()
	s.styles = types.DefaultStyleSettings()
	s.dirty = false
	snap := s.snapshotLocked()
	subs := append(([]func(Snapshot))(nil), s.subscribers...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

func typeError(c types.Collection, e types.Entry) error {
	return &EntryTypeError{Collection: string(c), Got: entryTypeName(e)}
}

func entryTypeName(e types.Entry) string {
	switch e.(type) {
	case *types.Education:
		return "education"
	case *types.Employment:
		return "employment"
	case *types.Skill:
		return "skill"
	case *types.Language:
		return "language"
	case *types.Course:
		return "course"
	case *types.Internship:
		return "internship"
	case *types.ExtracurricularActivity:
		return "extracurricularActivity"
	case *types.Reference:
		return "reference"
	case *types.Quality:
		return "quality"
	case *types.Certificate:
		return "certificate"
	case *types.Achievement:
		return "achievement"
	default:
		return "unknown"
	}
}
