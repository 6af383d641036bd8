//nolint:revive // types is a standard Go package name pattern
package types

// Collection names one of the identified entry collections of a Document.
// Values match the document's JSON field names. Hobbies are not listed here:
// they carry no identifiers and are addressed by index through dedicated
// store operations.
type Collection string

// All identified collections.
const (
	CollectionEducation                 Collection = "education"
	CollectionEmployment                Collection = "employment"
	CollectionSkills                    Collection = "skills"
	CollectionLanguages                 Collection = "languages"
	CollectionCourses                   Collection = "courses"
	CollectionInternships               Collection = "internships"
	CollectionExtracurricularActivities Collection = "extracurricularActivities"
	CollectionReferences                Collection = "references"
	CollectionQualities                 Collection = "qualities"
	CollectionCertificates              Collection = "certificates"
	CollectionAchievements              Collection = "achievements"
)

// Collections lists every identified collection in document order.
func Collections() []Collection {
	return []Collection{
		CollectionEducation,
		CollectionEmployment,
		CollectionSkills,
		CollectionLanguages,
		CollectionCourses,
		CollectionInternships,
		CollectionExtracurricularActivities,
		CollectionReferences,
		CollectionQualities,
		CollectionCertificates,
		CollectionAchievements,
	}
}
