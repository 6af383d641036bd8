package layout

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// BlockKind identifies the shape of a block's content.
type BlockKind string

// The closed set of block kinds both render targets understand.
const (
	BlockHeader   BlockKind = "header"
	BlockRichText BlockKind = "richtext"
	BlockEntries  BlockKind = "entries"
	BlockTags     BlockKind = "tags"
	BlockBullets  BlockKind = "bullets"
)

// Field is one labeled value in the header block.
type Field struct {
	Key   string
	Label string
	Value string
}

// Header carries the name/contact block content. Optional fields appear in a
// fixed slot order regardless of how the document was built.
type Header struct {
	Name     string
	Headline string
	Photo    string
	Contacts []Field
	Optional []Field
}

// EntryItem is one rendered item of a collection-backed section.
type EntryItem struct {
	Title       string
	Subtitle    string
	Dates       string
	Description string
	Meta        []string
}

// Block is one resolved section in display order. Exactly one of the content
// fields is populated according to Kind. HasPageBreak requests a forced page
// break after this block's content.
type Block struct {
	Section      types.SectionType
	Title        string
	Kind         BlockKind
	HasPageBreak bool

	Header   *Header
	RichText string
	Entries  []EntryItem
	Tags     []string
	Bullets  []string
}

// Resolve filters the registry to visible sections, sorts them by order
// (stable, so accidental ties keep their relative order), and produces one
// content block per section that has anything to show. Sections whose backing
// collection is empty, or whose free text is blank, contribute no block even
// when marked visible; that is a rendering guard, not a visibility change.
func Resolve(doc types.Document, sections []types.Section) []Block {
	visible := make([]types.Section, 0, len(sections))
	for _, sec := range sections {
		if sec.IsVisible {
			visible = append(visible, sec)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	blocks := make([]Block, 0, len(visible))
	for _, sec := range visible {
		block, ok := resolveSection(doc, sec)
		if !ok {
			continue
		}
		block.Section = sec.Type
		block.Title = sec.Title
		block.HasPageBreak = sec.HasPageBreak
		blocks = append(blocks, block)
	}
	return blocks
}

func resolveSection(doc types.Document, sec types.Section) (Block, bool) {
	switch sec.Type {
	case types.SectionPersonalDetails:
		return Block{Kind: BlockHeader, Header: resolveHeader(doc.PersonalDetails)}, true

	case types.SectionProfile:
		if strings.TrimSpace(doc.Profile) == "" {
			return Block{}, false
		}
		return Block{Kind: BlockRichText, RichText: doc.Profile}, true

	case types.SectionEducation:
		if len(doc.Education) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.Education))
		for _, e := range doc.Education {
			items = append(items, EntryItem{
				Title:       e.Degree,
				Subtitle:    e.School,
				Dates:       FormatRange(e.Start, e.End, e.Ongoing),
				Description: e.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionEmployment:
		if len(doc.Employment) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.Employment))
		for _, e := range doc.Employment {
			items = append(items, EntryItem{
				Title:       e.Position,
				Subtitle:    e.Company,
				Dates:       FormatRange(e.Start, e.End, e.Ongoing),
				Description: e.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionSkills:
		if len(doc.Skills) == 0 {
			return Block{}, false
		}
		tags := make([]string, 0, len(doc.Skills))
		for _, sk := range doc.Skills {
			tags = append(tags, sk.Name+" • "+string(sk.Level))
		}
		return Block{Kind: BlockTags, Tags: tags}, true

	case types.SectionLanguages:
		if len(doc.Languages) == 0 {
			return Block{}, false
		}
		tags := make([]string, 0, len(doc.Languages))
		for _, l := range doc.Languages {
			tags = append(tags, l.Name+" • "+string(l.Level))
		}
		return Block{Kind: BlockTags, Tags: tags}, true

	case types.SectionHobbies:
		if len(doc.Hobbies) == 0 {
			return Block{}, false
		}
		return Block{Kind: BlockTags, Tags: append([]string(nil), doc.Hobbies...)}, true

	case types.SectionCourses:
		if len(doc.Courses) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.Courses))
		for _, c := range doc.Courses {
			items = append(items, EntryItem{
				Title:       c.Name,
				Dates:       FormatMonthYearRange(c.StartMonth, c.StartYear, c.EndMonth, c.EndYear, c.Ongoing),
				Description: c.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionInternships:
		if len(doc.Internships) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.Internships))
		for _, in := range doc.Internships {
			items = append(items, EntryItem{
				Title:       in.Position,
				Subtitle:    joinNonEmpty(in.Employer, in.City),
				Dates:       FormatMonthYearRange(in.StartMonth, in.StartYear, in.EndMonth, in.EndYear, in.Ongoing),
				Description: in.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionExtracurricularActivities:
		if len(doc.ExtracurricularActivities) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.ExtracurricularActivities))
		for _, a := range doc.ExtracurricularActivities {
			items = append(items, EntryItem{
				Title:       a.Position,
				Subtitle:    joinNonEmpty(a.Employer, a.City),
				Dates:       FormatMonthYearRange(a.StartMonth, a.StartYear, a.EndMonth, a.EndYear, a.Ongoing),
				Description: a.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionReferences:
		if len(doc.References) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.References))
		for _, r := range doc.References {
			var meta []string
			if r.Phone != "" {
				meta = append(meta, r.Phone)
			}
			if r.Email != "" {
				meta = append(meta, r.Email)
			}
			items = append(items, EntryItem{
				Title:    r.Name,
				Subtitle: joinNonEmpty(r.Organization, r.City),
				Meta:     meta,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionQualities:
		if len(doc.Qualities) == 0 {
			return Block{}, false
		}
		tags := make([]string, 0, len(doc.Qualities))
		for _, q := range doc.Qualities {
			tags = append(tags, q.Quality)
		}
		return Block{Kind: BlockTags, Tags: tags}, true

	case types.SectionCertificates:
		if len(doc.Certificates) == 0 {
			return Block{}, false
		}
		items := make([]EntryItem, 0, len(doc.Certificates))
		for _, c := range doc.Certificates {
			items = append(items, EntryItem{
				Title:       c.Name,
				Dates:       FormatMonthYearRange(c.StartMonth, c.StartYear, c.EndMonth, c.EndYear, c.Ongoing),
				Description: c.Description,
			})
		}
		return Block{Kind: BlockEntries, Entries: items}, true

	case types.SectionAchievements:
		if len(doc.Achievements) == 0 {
			return Block{}, false
		}
		bullets := make([]string, 0, len(doc.Achievements))
		for _, a := range doc.Achievements {
			bullets = append(bullets, a.Description)
		}
		return Block{Kind: BlockBullets, Bullets: bullets}, true

	case types.SectionFooter:
		if strings.TrimSpace(doc.Footer.Description) == "" {
			return Block{}, false
		}
		return Block{Kind: BlockRichText, RichText: doc.Footer.Description}, true

	default:
		return Block{}, false
	}
}

func resolveHeader(pd types.PersonalDetails) *Header {
	h := &Header{
		Name:     strings.TrimSpace(pd.FirstName + " " + pd.LastName),
		Headline: pd.Headline,
		Photo:    pd.Photo,
	}

	contacts := []Field{
		{Key: "email", Label: "Email", Value: pd.Email},
		{Key: "phone", Label: "Phone", Value: pd.Phone},
		{Key: "address", Label: "Address", Value: pd.Address},
		{Key: "location", Label: "Location", Value: strings.TrimSpace(pd.Postcode + " " + pd.City)},
	}
	for _, f := range contacts {
		if f.Value != "" {
			h.Contacts = append(h.Contacts, f)
		}
	}

	// Recognized optional identity fields render in a fixed slot order; the
	// single custom pair always comes last. Anything else is ignored by
	// construction of the closed OptionalFields set.
	of := pd.OptionalFields
	optional := []Field{
		{Key: "dob", Label: "Date of Birth", Value: of.DateOfBirth},
		{Key: "birthplace", Label: "Birthplace", Value: of.Birthplace},
		{Key: "driverLicense", Label: "Driver's License", Value: of.DriverLicense},
		{Key: "gender", Label: "Gender", Value: of.Gender},
		{Key: "nationality", Label: "Nationality", Value: of.Nationality},
		{Key: "civilStatus", Label: "Civil Status", Value: of.CivilStatus},
		{Key: "website", Label: "Website", Value: of.Website},
		{Key: "linkedin", Label: "LinkedIn", Value: of.LinkedIn},
	}
	for _, f := range optional {
		if f.Value != "" {
			h.Optional = append(h.Optional, f)
		}
	}
	if of.Custom != nil && of.Custom.Value != "" {
		h.Optional = append(h.Optional, Field{Key: "custom", Label: of.Custom.Label, Value: of.Custom.Value})
	}
	return h
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
