//nolint:revive // types is a standard Go package name pattern
package types

// SectionType identifies a document area. Each section maps 1:1 to one area
// of the Document; the type is immutable after creation.
type SectionType string

// All recognized section types.
const (
	SectionPersonalDetails           SectionType = "personalDetails"
	SectionProfile                   SectionType = "profile"
	SectionEducation                 SectionType = "education"
	SectionEmployment                SectionType = "employment"
	SectionSkills                    SectionType = "skills"
	SectionLanguages                 SectionType = "languages"
	SectionHobbies                   SectionType = "hobbies"
	SectionCourses                   SectionType = "courses"
	SectionInternships               SectionType = "internships"
	SectionExtracurricularActivities SectionType = "extracurricularActivities"
	SectionReferences                SectionType = "references"
	SectionQualities                 SectionType = "qualities"
	SectionCertificates              SectionType = "certificates"
	SectionAchievements              SectionType = "achievements"
	SectionFooter                    SectionType = "footer"
)

// Section is one registry entry carrying per-section presentation metadata.
// Order values, when sorted, define a total order over all sections.
type Section struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         SectionType `json:"type"`
	IsVisible    bool        `json:"isVisible"`
	IsOptional   bool        `json:"isOptional"`
	CanRename    bool        `json:"canRename"`
	HasPageBreak bool        `json:"hasPageBreak"`
	Order        int         `json:"order"`
}

// DefaultSections returns the default section registry: seven core sections
// visible, eight optional sections hidden, personalDetails pinned at order 0.
func DefaultSections() []Section {
	return []Section{
		{ID: "personalDetails", Title: "Personal Details", Type: SectionPersonalDetails, IsVisible: true, IsOptional: false, CanRename: false, Order: 0},
		{ID: "profile", Title: "Profile", Type: SectionProfile, IsVisible: true, IsOptional: false, CanRename: true, Order: 1},
		{ID: "education", Title: "Education", Type: SectionEducation, IsVisible: true, IsOptional: false, CanRename: true, Order: 2},
		{ID: "employment", Title: "Employment", Type: SectionEmployment, IsVisible: true, IsOptional: false, CanRename: true, Order: 3},
		{ID: "skills", Title: "Skills", Type: SectionSkills, IsVisible: true, IsOptional: false, CanRename: true, Order: 4},
		{ID: "languages", Title: "Languages", Type: SectionLanguages, IsVisible: true, IsOptional: false, CanRename: true, Order: 5},
		{ID: "hobbies", Title: "Hobbies", Type: SectionHobbies, IsVisible: true, IsOptional: false, CanRename: true, Order: 6},
		{ID: "courses", Title: "Courses", Type: SectionCourses, IsVisible: false, IsOptional: true, CanRename: true, Order: 7},
		{ID: "internships", Title: "Internships", Type: SectionInternships, IsVisible: false, IsOptional: true, CanRename: true, Order: 8},
		{ID: "extracurricularActivities", Title: "Extracurricular Activities", Type: SectionExtracurricularActivities, IsVisible: false, IsOptional: true, CanRename: true, Order: 9},
		{ID: "references", Title: "References", Type: SectionReferences, IsVisible: false, IsOptional: true, CanRename: true, Order: 10},
		{ID: "qualities", Title: "Qualities", Type: SectionQualities, IsVisible: false, IsOptional: true, CanRename: true, Order: 11},
		{ID: "certificates", Title: "Certificates", Type: SectionCertificates, IsVisible: false, IsOptional: true, CanRename: true, Order: 12},
		{ID: "achievements", Title: "Achievements", Type: SectionAchievements, IsVisible: false, IsOptional: true, CanRename: true, Order: 13},
		{ID: "footer", Title: "Footer", Type: SectionFooter, IsVisible: false, IsOptional: true, CanRename: true, Order: 14},
	}
}

// SectionTypes lists every recognized section type in default order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionPersonalDetails,
		SectionProfile,
		SectionEducation,
		SectionEmployment,
		SectionSkills,
		SectionLanguages,
		SectionHobbies,
		SectionCourses,
		SectionInternships,
		SectionExtracurricularActivities,
		SectionReferences,
		SectionQualities,
		SectionCertificates,
		SectionAchievements,
		SectionFooter,
	}
}

// IsKnownSectionType reports whether t is one of the recognized section types.
func IsKnownSectionType(t SectionType) bool {
	for _, known := range SectionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// CloneSections returns a deep copy of a section list.
func CloneSections(sections []Section) []Section {
	return append([]Section(nil), sections...)
}
