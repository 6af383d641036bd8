// Package docio moves documents across the system boundary: JSON export of
// the document content and validated JSON import with normalization.
package docio

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// ImportResult is the outcome of a successful import.
type ImportResult struct {
	// Document is the normalized document, ready to load into a store.
	Document types.Document
	// GeneratedIDs counts entries that arrived without an identifier and had
	// one minted during normalization.
	GeneratedIDs int
	// OptionalSectionsWithData lists optional section types the document
	// carries content for. Callers surface these so the user knows which
	// hidden sections will light up.
	OptionalSectionsWithData []types.SectionType
}

// Export serializes the document content as indented JSON. The payload
// contains the document only; the section registry and style settings are
// presentation state and stay behind.
func Export(doc types.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Import validates raw JSON against the document schema, decodes it, and
// normalizes the result. Validation is fail-closed: a payload that does not
// match the schema is rejected before any state changes.
func Import(data []byte) (*ImportResult, error) {
	if err := schemas.ValidateDocument(data); err != nil {
		return nil, err
	}

	doc := types.NewDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	generated := normalize(&doc)

	var withData []types.SectionType
	for _, s := range types.DefaultSections() {
		if s.IsOptional && doc.HasOptionalSectionData(s.Type) {
			withData = append(withData, s.Type)
		}
	}

	return &ImportResult{
		Document:                 doc,
		GeneratedIDs:             generated,
		OptionalSectionsWithData: withData,
	}, nil
}

// normalize backfills missing entry identifiers. The schema guarantees every
// collection arrived as an array, so no slice repair is needed here.
func normalize(doc *types.Document) int {
	generated := 0
	fill := func(id *string) {
		if *id == "" {
			*id = uuid.NewString()
			generated++
		}
	}

	for i := range doc.Education {
		fill(&doc.Education[i].ID)
	}
	for i := range doc.Employment {
		fill(&doc.Employment[i].ID)
	}
	for i := range doc.Skills {
		fill(&doc.Skills[i].ID)
	}
	for i := range doc.Languages {
		fill(&doc.Languages[i].ID)
	}
	for i := range doc.Courses {
		fill(&doc.Courses[i].ID)
	}
	for i := range doc.Internships {
		fill(&doc.Internships[i].ID)
	}
	for i := range doc.ExtracurricularActivities {
		fill(&doc.ExtracurricularActivities[i].ID)
	}
	for i := range doc.References {
		fill(&doc.References[i].ID)
	}
	for i := range doc.Qualities {
		fill(&doc.Qualities[i].ID)
	}
	for i := range doc.Certificates {
		fill(&doc.Certificates[i].ID)
	}
	for i := range doc.Achievements {
		fill(&doc.Achievements[i].ID)
	}

	return generated
}
