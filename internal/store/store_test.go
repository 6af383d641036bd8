package store

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntry_AssignsUniqueIdentifiers(t *testing.T) {
	s := New()

	ids := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, err := s.AddEntry(types.CollectionEmployment, &types.Employment{Position: "Engineer"})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		assert.False(t, ids[id], "identifier %s assigned twice", id)
		ids[id] = true
	}

	snap := s.Snapshot()
	require.Len(t, snap.Document.Employment, 20)
	assert.True(t, s.Dirty())
}

func TestAddEntry_IdentifierSurvivesDeleteAddCycles(t *testing.T) {
	s := New()

	first, err := s.AddEntry(types.CollectionSkills, &types.Skill{Name: "Go", Level: types.SkillExcellent})
	require.NoError(t, err)
	second, err := s.AddEntry(types.CollectionSkills, &types.Skill{Name: "SQL", Level: types.SkillIntermediate})
	require.NoError(t, err)
	require.NoError(t, s.DeleteEntry(types.CollectionSkills, first))
	third, err := s.AddEntry(types.CollectionSkills, &types.Skill{Name: "Rust", Level: types.SkillBeginner})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Document.Skills, 2)
	assert.NotEqual(t, snap.Document.Skills[0].ID, snap.Document.Skills[1].ID)
	assert.Equal(t, second, snap.Document.Skills[0].ID)
	assert.Equal(t, third, snap.Document.Skills[1].ID)
}

func TestAddEntry_WrongEntryType(t *testing.T) {
	s := New()
	_, err := s.AddEntry(types.CollectionEducation, &types.Employment{Position: "Engineer"})
	require.Error(t, err)
	var typeErr *EntryTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.Empty(t, s.Snapshot().Document.Education)
}

func TestAddEntry_UnknownCollection(t *testing.T) {
	s := New()
	_, err := s.AddEntry("publications", &types.Employment{})
	var unknownErr *UnknownCollectionError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestUpdateEntry_PreservesIdentifier(t *testing.T) {
	s := New()
	id, err := s.AddEntry(types.CollectionEmployment, &types.Employment{Position: "Engineer", Company: "Acme"})
	require.NoError(t, err)

	// The replacement carries a different identifier; it must not win.
	err = s.UpdateEntry(types.CollectionEmployment, id, &types.Employment{ID: "forged", Position: "Manager", Company: "Acme"})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Document.Employment, 1)
	assert.Equal(t, id, snap.Document.Employment[0].ID)
	assert.Equal(t, "Manager", snap.Document.Employment[0].Position)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	s := New()
	err := s.UpdateEntry(types.CollectionEmployment, "missing", &types.Employment{Position: "Manager"})
	var notFound *EntryNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestDeleteEntry_IsIdempotent(t *testing.T) {
	s := New()
	id, err := s.AddEntry(types.CollectionLanguages, &types.Language{Name: "Dutch", Level: types.LanguageNative})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(types.CollectionLanguages, id))
	require.NoError(t, s.DeleteEntry(types.CollectionLanguages, id))
	assert.Empty(t, s.Snapshot().Document.Languages)
}

func TestReorderEntries_AppliesPermutation(t *testing.T) {
	s := New()
	var ids []string
	for _, name := range []string{"a", "b", "c", "d"} {
		id, err := s.AddEntry(types.CollectionQualities, &types.Quality{Quality: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	perm := []string{ids[2], ids[0], ids[3], ids[1]}
	require.NoError(t, s.ReorderEntries(types.CollectionQualities, perm))

	snap := s.Snapshot()
	require.Len(t, snap.Document.Qualities, 4)
	for i, id := range perm {
		assert.Equal(t, id, snap.Document.Qualities[i].ID)
	}
	assert.Equal(t, "c", snap.Document.Qualities[0].Quality)
}

func TestReorderEntries_RejectsNonPermutation(t *testing.T) {
	s := New()
	idA, err := s.AddEntry(types.CollectionQualities, &types.Quality{Quality: "a"})
	require.NoError(t, err)
	idB, err := s.AddEntry(types.CollectionQualities, &types.Quality{Quality: "b"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []string
	}{
		{"missing entry", []string{idA}},
		{"unknown entry", []string{idA, idB, "stray"}},
		{"duplicate entry", []string{idA, idA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ReorderEntries(types.CollectionQualities, tt.input)
			var permErr *NotPermutationError
			require.ErrorAs(t, err, &permErr)

			// Nothing is dropped and order is untouched.
			snap := s.Snapshot()
			require.Len(t, snap.Document.Qualities, 2)
			assert.Equal(t, idA, snap.Document.Qualities[0].ID)
			assert.Equal(t, idB, snap.Document.Qualities[1].ID)
		})
	}
}

func TestHobbies_IndexAddressedOperations(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	s.AddHobby("Hiking")

	require.NoError(t, s.UpdateHobby(1, "Climbing"))
	assert.Equal(t, []string{"Chess", "Climbing"}, s.Snapshot().Document.Hobbies)

	require.NoError(t, s.DeleteHobby(0))
	assert.Equal(t, []string{"Climbing"}, s.Snapshot().Document.Hobbies)

	var notFound *HobbyNotFoundError
	assert.ErrorAs(t, s.UpdateHobby(5, "x"), &notFound)
	assert.ErrorAs(t, s.DeleteHobby(-1), &notFound)
}

func TestRemoveSection_HidePreservesData(t *testing.T) {
	s := New()
	id, err := s.AddEntry(types.CollectionCertificates, &types.Certificate{Name: "CKA"})
	require.NoError(t, err)
	require.NoError(t, s.ToggleSection(types.SectionCertificates))
	require.True(t, findSection(t, s, types.SectionCertificates).IsVisible)

	require.NoError(t, s.RemoveSection(types.SectionCertificates))
	assert.False(t, findSection(t, s, types.SectionCertificates).IsVisible)

	// The backing collection is untouched; toggling back restores everything.
	require.NoError(t, s.ToggleSection(types.SectionCertificates))
	snap := s.Snapshot()
	require.Len(t, snap.Document.Certificates, 1)
	assert.Equal(t, id, snap.Document.Certificates[0].ID)
	assert.Equal(t, "CKA", snap.Document.Certificates[0].Name)
}

func TestRemoveSection_CoreSectionRejected(t *testing.T) {
	s := New()
	err := s.RemoveSection(types.SectionPersonalDetails)
	var notOptional *SectionNotOptionalError
	require.ErrorAs(t, err, &notOptional)
	assert.True(t, findSection(t, s, types.SectionPersonalDetails).IsVisible)
}

func TestReorderSections_OrderDerivedFromPosition(t *testing.T) {
	s := New()
	order := []types.SectionType{
		types.SectionPersonalDetails,
		types.SectionEmployment,
		types.SectionEducation,
		types.SectionProfile,
		types.SectionSkills,
		types.SectionLanguages,
		types.SectionHobbies,
		types.SectionCourses,
		types.SectionInternships,
		types.SectionExtracurricularActivities,
		types.SectionReferences,
		types.SectionQualities,
		types.SectionCertificates,
		types.SectionAchievements,
		types.SectionFooter,
	}
	require.NoError(t, s.ReorderSections(order))

	snap := s.Snapshot()
	require.Len(t, snap.Sections, 15)
	for i, sec := range snap.Sections {
		assert.Equal(t, order[i], sec.Type)
		assert.Equal(t, i, sec.Order)
	}
}

func TestReorderSections_RejectsIncompleteInput(t *testing.T) {
	s := New()
	err := s.ReorderSections([]types.SectionType{types.SectionProfile, types.SectionEducation})
	var permErr *NotPermutationError
	require.ErrorAs(t, err, &permErr)
	assert.Len(t, s.Snapshot().Sections, 15)
}

func TestTogglePageBreak_FlipsExactlyOneSection(t *testing.T) {
	s := New()
	require.NoError(t, s.TogglePageBreak("employment"))

	for _, sec := range s.Snapshot().Sections {
		if sec.ID == "employment" {
			assert.True(t, sec.HasPageBreak)
		} else {
			assert.False(t, sec.HasPageBreak)
		}
	}

	var unknown *UnknownSectionError
	assert.ErrorAs(t, s.TogglePageBreak("nope"), &unknown)
}

func TestRenameSection(t *testing.T) {
	s := New()
	require.NoError(t, s.RenameSection("employment", "Work History"))
	for _, sec := range s.Snapshot().Sections {
		if sec.ID == "employment" {
			assert.Equal(t, "Work History", sec.Title)
		}
	}
}

func TestUpdateStyleSettings_InvalidPatchLeavesStateUnchanged(t *testing.T) {
	s := New()
	bad := 40.0
	err := s.UpdateStyleSettings(types.StylePatch{FontSize: &bad})
	require.Error(t, err)
	assert.Equal(t, 12.0, s.Snapshot().StyleSettings.FontSize)

	good := 14.0
	require.NoError(t, s.UpdateStyleSettings(types.StylePatch{FontSize: &good}))
	assert.Equal(t, 14.0, s.Snapshot().StyleSettings.FontSize)
}

func TestSetTemplate(t *testing.T) {
	s := New()
	require.NoError(t, s.SetTemplate("classic"))
	assert.Equal(t, "classic", s.Snapshot().StyleSettings.TemplateID)
}

func TestImportDocumentWithDerivedVisibility(t *testing.T) {
	doc := types.NewDocument()
	doc.Certificates = []types.Certificate{{ID: "c1", Name: "CKA"}}
	doc.Footer.Description = "  "

	s := New()
	s.ImportDocumentWithDerivedVisibility(doc)

	snap := s.Snapshot()
	for _, sec := range snap.Sections {
		switch {
		case !sec.IsOptional:
			assert.True(t, sec.IsVisible, "core section %s must stay visible", sec.Type)
		case sec.Type == types.SectionCertificates:
			assert.True(t, sec.IsVisible)
		default:
			assert.False(t, sec.IsVisible, "optional section %s has no data", sec.Type)
		}
	}
}

func TestImportDocument_KeepsRegistryAndStyles(t *testing.T) {
	s := New()
	require.NoError(t, s.ToggleSection(types.SectionCourses))
	require.NoError(t, s.SetTemplate("classic"))

	doc := types.NewDocument()
	doc.PersonalDetails.FirstName = "Ada"
	s.ImportDocument(doc)

	snap := s.Snapshot()
	assert.Equal(t, "Ada", snap.Document.PersonalDetails.FirstName)
	assert.True(t, findSection(t, s, types.SectionCourses).IsVisible)
	assert.Equal(t, "classic", snap.StyleSettings.TemplateID)
}

func TestMarkClean(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	require.True(t, s.Dirty())
	require.True(t, s.LastSaved().IsZero())

	s.MarkClean()
	assert.False(t, s.Dirty())
	assert.False(t, s.LastSaved().IsZero())
	// Content is unaffected.
	assert.Equal(t, []string{"Chess"}, s.Snapshot().Document.Hobbies)
}

func TestMarkCleanVersion_StaleSnapshotKeepsDirty(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	stale := s.Snapshot()

	s.AddHobby("Hiking")
	s.MarkCleanVersion(stale.Version)
	assert.True(t, s.Dirty(), "a save of an older snapshot must not mark newer edits clean")

	current := s.Snapshot()
	s.MarkCleanVersion(current.Version)
	assert.False(t, s.Dirty())
}

func TestSnapshot_VersionAdvancesPerMutation(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	first := s.Snapshot().Version

	s.AddHobby("Hiking")
	assert.Greater(t, s.Snapshot().Version, first)

	// Failed mutations leave the version alone.
	_ = s.UpdateHobby(10, "x")
	assert.Equal(t, first+1, s.Snapshot().Version)
}

func TestSnapshot_IsIsolatedFromLaterMutations(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	snap := s.Snapshot()

	s.AddHobby("Hiking")
	s.UpdateProfile("changed")

	assert.Equal(t, []string{"Chess"}, snap.Document.Hobbies)
	assert.Empty(t, snap.Document.Profile)
}

func TestSubscribe_NotifiedOnMutationWithSnapshot(t *testing.T) {
	s := New()
	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.AddHobby("Chess")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Chess"}, got[0].Document.Hobbies)

	// Failed mutations do not notify.
	_ = s.UpdateHobby(10, "x")
	assert.Len(t, got, 1)
}

func TestReset_RestoresDefaultsClean(t *testing.T) {
	s := New()
	s.AddHobby("Chess")
	require.NoError(t, s.SetTemplate("classic"))

	s.Reset()

	snap := s.Snapshot()
	assert.Empty(t, snap.Document.Hobbies)
	assert.Equal(t, "modern", snap.StyleSettings.TemplateID)
	assert.False(t, s.Dirty())
}

func findSection(t *testing.T, s *Store, st types.SectionType) types.Section {
	t.Helper()
	for _, sec := range s.Snapshot().Sections {
		if sec.Type == st {
			return sec
		}
	}
	t.Fatalf("section %s not found", st)
	return types.Section{}
}
