// Package types provides type definitions for the resume document, section
// registry, and style settings shared across the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalDetails holds the identity fields of the resume owner.
// Photo is a binary-as-text (data URL) encoding when present.
type PersonalDetails struct {
	Photo          string         `json:"photo,omitempty"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Headline       string         `json:"headline,omitempty"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Postcode       string         `json:"postcode"`
	City           string         `json:"city"`
	OptionalFields OptionalFields `json:"optionalFields"`
}

// OptionalFields is the closed set of recognized optional identity fields.
// A non-empty field is active and rendered; an empty field is never rendered.
// There is no separate enabled flag.
type OptionalFields struct {
	DateOfBirth   string       `json:"dob,omitempty"`
	Birthplace    string       `json:"birthplace,omitempty"`
	Gender        string       `json:"gender,omitempty"`
	DriverLicense string       `json:"driverLicense,omitempty"`
	Nationality   string       `json:"nationality,omitempty"`
	CivilStatus   string       `json:"civilStatus,omitempty"`
	Website       string       `json:"website,omitempty"`
	LinkedIn      string       `json:"linkedin,omitempty"`
	Custom        *CustomField `json:"custom,omitempty"`
}

// CustomField is the single free-form label/value pair allowed next to the
// recognized optional fields.
type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SkillLevel is the proficiency scale for skills.
type SkillLevel string

// Recognized skill levels.
const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillExcellent    SkillLevel = "Excellent"
)

// LanguageLevel is the proficiency scale for languages.
type LanguageLevel string

// Recognized language levels.
const (
	LanguageBasic  LanguageLevel = "Basic"
	LanguageFluent LanguageLevel = "Fluent"
	LanguageNative LanguageLevel = "Native"
)

// Education represents one education entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// Employment represents one employment entry.
type Employment struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// Skill represents one skill entry.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Language represents one language entry.
type Language struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// Course represents one course entry. Dates are separate month/year pairs;
// the month is a two-digit string ("01".."12").
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// Internship represents one internship entry.
type Internship struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Employer    string `json:"employer"`
	City        string `json:"city"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// ExtracurricularActivity represents one extracurricular activity entry.
type ExtracurricularActivity struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Employer    string `json:"employer"`
	City        string `json:"city"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// Reference represents one reference entry.
type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// Quality represents one personal quality entry.
type Quality struct {
	ID      string `json:"id"`
	Quality string `json:"quality"`
}

// Certificate represents one certificate entry.
type Certificate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartMonth  string `json:"startMonth"`
	StartYear   string `json:"startYear"`
	EndMonth    string `json:"endMonth"`
	EndYear     string `json:"endYear"`
	Ongoing     bool   `json:"ongoing"`
	Description string `json:"description"`
}

// Achievement represents one achievement entry.
type Achievement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Footer is the single free-text block at the bottom of the resume.
type Footer struct {
	Description string `json:"description"`
}

// Document is the full structured resume. Collection order is display order
// within the corresponding section. Every entry in an identified collection
// carries a unique, stable identifier; hobbies are the one index-addressed
// collection (plain strings, ordered by array position).
type Document struct {
	PersonalDetails           PersonalDetails           `json:"personalDetails"`
	Profile                   string                    `json:"profile"`
	Education                 []Education               `json:"education"`
	Employment                []Employment              `json:"employment"`
	Skills                    []Skill                   `json:"skills"`
	Languages                 []Language                `json:"languages"`
	Hobbies                   []string                  `json:"hobbies"`
	Courses                   []Course                  `json:"courses"`
	Internships               []Internship              `json:"internships"`
	ExtracurricularActivities []ExtracurricularActivity `json:"extracurricularActivities"`
	References                []Reference               `json:"references"`
	Qualities                 []Quality                 `json:"qualities"`
	Certificates              []Certificate             `json:"certificates"`
	Achievements              []Achievement             `json:"achievements"`
	Footer                    Footer                    `json:"footer"`
}

// NewDocument returns an empty document with all collections initialized.
func NewDocument() Document {
	return Document{
		Education:                 []Education{},
		Employment:                []Employment{},
		Skills:                    []Skill{},
		Languages:                 []Language{},
		Hobbies:                   []string{},
		Courses:                   []Course{},
		Internships:               []Internship{},
		ExtracurricularActivities: []ExtracurricularActivity{},
		References:                []Reference{},
		Qualities:                 []Quality{},
		Certificates:              []Certificate{},
		Achievements:              []Achievement{},
		Footer:                    Footer{},
	}
}

// Clone returns a deep copy of the document. Exports snapshot through Clone
// so in-flight renders never observe later edits.
func (d Document) Clone() Document {
	out := d
	if d.PersonalDetails.OptionalFields.Custom != nil {
		custom := *d.PersonalDetails.OptionalFields.Custom
		out.PersonalDetails.OptionalFields.Custom = &custom
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Employment = append([]Employment(nil), d.Employment...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Languages = append([]Language(nil), d.Languages...)
	out.Hobbies = append([]string(nil), d.Hobbies...)
	out.Courses = append([]Course(nil), d.Courses...)
	out.Internships = append([]Internship(nil), d.Internships...)
	out.ExtracurricularActivities = append([]ExtracurricularActivity(nil), d.ExtracurricularActivities...)
	out.References = append([]Reference(nil), d.References...)
	out.Qualities = append([]Quality(nil), d.Qualities...)
	out.Certificates = append([]Certificate(nil), d.Certificates...)
	out.Achievements = append([]Achievement(nil), d.Achievements...)
	return out
}

// HasOptionalSectionData reports whether the document carries content for an
// optional section type. Used to derive visibility when a document arrives
// without its own registry.
func (d Document) HasOptionalSectionData(t SectionType) bool {
	switch t {
	case SectionCourses:
		return len(d.Courses) > 0
	case SectionInternships:
		return len(d.Internships) > 0
	case SectionExtracurricularActivities:
		return len(d.ExtracurricularActivities) > 0
	case SectionReferences:
		return len(d.References) > 0
	case SectionQualities:
		return len(d.Qualities) > 0
	case SectionCertificates:
		return len(d.Certificates) > 0
	case SectionAchievements:
		return len(d.Achievements) > 0
	case SectionFooter:
		return strings.TrimSpace(d.Footer.Description) != ""
	default:
		return false
	}
}
