package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

func fixtureDocument() types.Document {
	doc := types.NewDocument()
	doc.PersonalDetails = types.PersonalDetails{
		Photo:     "data:image/png;base64,iVBORw0KGgo=",
		FirstName: "Grace",
		LastName:  "Hopper",
		Headline:  "Rear Admiral, Computer Scientist",
		Email:     "grace@example.com",
		Phone:     "+1 555 0100",
		City:      "Arlington",
		Postcode:  "22201",
	}
	doc.Profile = "<p>Pioneer of <strong>compiler</strong> design.</p>"
	doc.Employment = []types.Employment{
		{ID: "emp-1", Position: "Director", Company: "Navy Programming Languages Group", Start: "1967-08", Ongoing: true, Description: "<p>Led COBOL standardization.</p>"},
	}
	doc.Skills = []types.Skill{
		{ID: "sk-1", Name: "Compilers", Level: types.SkillExcellent},
		{ID: "sk-2", Name: "FLOW-MATIC", Level: types.SkillExcellent},
	}
	doc.Achievements = []types.Achievement{
		{ID: "ach-1", Description: "First compiler (A-0)"},
	}
	return doc
}

func fixtureSections() []types.Section {
	sections := types.DefaultSections()
	for i := range sections {
		switch sections[i].Type {
		case types.SectionAchievements:
			sections[i].IsVisible = true
		case types.SectionEmployment:
			sections[i].HasPageBreak = true
		}
	}
	return sections
}

func renderFixtureHTML(t *testing.T, styles types.StyleSettings) *goquery.Document {
	t.Helper()

	blocks := layout.Resolve(fixtureDocument(), fixtureSections())
	html, err := RenderHTML(blocks, styles)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestGetTemplate_Registry(t *testing.T) {
	all := Templates()
	require.Len(t, all, 2)
	assert.Equal(t, "modern", all[0].ID)
	assert.Equal(t, "classic", all[1].ID)

	tpl, err := GetTemplate(DefaultTemplateID)
	require.NoError(t, err)
	assert.Equal(t, "Modern", tpl.Name)

	_, err = GetTemplate("brutalist")
	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "brutalist", unknownErr.ID)
	assert.True(t, IsKnownTemplate("classic"))
	assert.False(t, IsKnownTemplate(""))
}

func TestRenderHTML_UnknownTemplate(t *testing.T) {
	styles := types.DefaultStyleSettings()
	styles.TemplateID = "nonexistent"

	_, err := RenderHTML(nil, styles)
	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
}

func TestRenderHTML_SectionSequence(t *testing.T) {
	doc := renderFixtureHTML(t, types.DefaultStyleSettings())

	var order []string
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		section, _ := s.Attr("data-section")
		order = append(order, section)
	})
	assert.Equal(t, []string{"personalDetails", "profile", "employment", "skills", "achievements"}, order)
}

func TestRenderHTML_PageBreakFollowsFlaggedSection(t *testing.T) {
	doc := renderFixtureHTML(t, types.DefaultStyleSettings())

	breaks := doc.Find(".page-break")
	require.Equal(t, 1, breaks.Length())

	prev := breaks.Prev()
	section, ok := prev.Attr("data-section")
	require.True(t, ok)
	assert.Equal(t, "employment", section)
}

func TestRenderHTML_RichTextPassthrough(t *testing.T) {
	blocks := layout.Resolve(fixtureDocument(), fixtureSections())
	html, err := RenderHTML(blocks, types.DefaultStyleSettings())
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>compiler</strong>")
	assert.Contains(t, html, "<p>Led COBOL standardization.</p>")
}

func TestRenderHTML_EscapesPlainText(t *testing.T) {
	fixture := fixtureDocument()
	fixture.Employment[0].Position = "R&D <Lead>"

	blocks := layout.Resolve(fixture, fixtureSections())
	html, err := RenderHTML(blocks, types.DefaultStyleSettings())
	require.NoError(t, err)

	assert.NotContains(t, html, "<Lead>")
	assert.Contains(t, html, "R&amp;D &lt;Lead&gt;")
}

func TestRenderHTML_StyleSettingsApplied(t *testing.T) {
	styles := types.DefaultStyleSettings()
	styles.FontFamily = "Georgia"
	styles.FontSize = 14
	styles.PrimaryColor = "#16a34a"

	blocks := layout.Resolve(fixtureDocument(), fixtureSections())
	html, err := RenderHTML(blocks, styles)
	require.NoError(t, err)

	assert.Contains(t, html, "font-family: Georgia, sans-serif")
	assert.Contains(t, html, "font-size: 14px")
	assert.Contains(t, html, "#16a34a")
}

func TestRenderHTML_ClassicVariant(t *testing.T) {
	styles := types.DefaultStyleSettings()
	styles.TemplateID = "classic"

	doc := renderFixtureHTML(t, styles)

	assert.Equal(t, 1, doc.Find(".classic-header").Length())
	assert.Equal(t, 0, doc.Find(".modern-header").Length())
	assert.Greater(t, doc.Find(".classic-section").Length(), 0)
}

func TestRenderHTML_HeaderContacts(t *testing.T) {
	doc := renderFixtureHTML(t, types.DefaultStyleSettings())

	header := doc.Find(".modern-header")
	require.Equal(t, 1, header.Length())
	assert.Equal(t, "Grace Hopper", header.Find("h1").Text())
	assert.Equal(t, "Rear Admiral, Computer Scientist", header.Find(".subtitle").Text())
	assert.Equal(t, "grace@example.com", header.Find(".contact-email").Text())
	assert.Equal(t, "22201 Arlington", header.Find(".contact-location").Text())
}

// Photo values are data URLs; the contextual sanitizer must not replace them
// with its rejection placeholder.
func TestRenderHTML_PhotoDataURLSurvives(t *testing.T) {
	doc := renderFixtureHTML(t, types.DefaultStyleSettings())

	img := doc.Find(".photo")
	require.Equal(t, 1, img.Length())
	src, ok := img.Attr("src")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", src)
	assert.NotContains(t, src, "ZgotmplZ")
}

func TestRenderPreview_MirrorsBlocks(t *testing.T) {
	blocks := layout.Resolve(fixtureDocument(), fixtureSections())
	preview, err := RenderPreview(blocks, types.DefaultStyleSettings())
	require.NoError(t, err)

	assert.Equal(t, "modern", preview.TemplateID)
	require.Len(t, preview.Sections, len(blocks))
	for i, sec := range preview.Sections {
		assert.Equal(t, blocks[i].Section, sec.Type)
		assert.Equal(t, blocks[i].Title, sec.Title)
		assert.Equal(t, blocks[i].Kind, sec.Kind)
		assert.Equal(t, blocks[i].HasPageBreak, sec.PageBreakAfter)
	}
}

func TestRenderPreview_UnknownTemplate(t *testing.T) {
	styles := types.DefaultStyleSettings()
	styles.TemplateID = "nope"

	_, err := RenderPreview(nil, styles)
	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
}

// Both presentation targets must agree on section sequence, visible text, and
// page break placement for the same resolved blocks.
func TestRenderParity_PreviewMatchesHTML(t *testing.T) {
	for _, templateID := range []string{"modern", "classic"} {
		t.Run(templateID, func(t *testing.T) {
			styles := types.DefaultStyleSettings()
			styles.TemplateID = templateID

			blocks := layout.Resolve(fixtureDocument(), fixtureSections())
			preview, err := RenderPreview(blocks, styles)
			require.NoError(t, err)

			doc := renderFixtureHTML(t, styles)
			rendered := doc.Find("[data-section]")
			require.Equal(t, len(preview.Sections), rendered.Length())

			rendered.Each(func(i int, s *goquery.Selection) {
				sec := preview.Sections[i]
				section, _ := s.Attr("data-section")
				assert.Equal(t, string(sec.Type), section)

				if sec.Kind == layout.BlockHeader {
					src, _ := s.Find(".photo").Attr("src")
					assert.Equal(t, sec.Header.Photo, src)
				} else {
					assert.Equal(t, sec.Title, s.Find("h2").Text())
				}
				for _, tag := range sec.Tags {
					assert.Contains(t, s.Text(), tag)
				}
				for _, entry := range sec.Entries {
					assert.Contains(t, s.Text(), entry.Title)
					if entry.Dates != "" {
						assert.Contains(t, s.Text(), entry.Dates)
					}
				}
				assert.Equal(t, sec.PageBreakAfter, s.Next().HasClass("page-break"))
			})
		})
	}
}
