package rendering

import (
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// Preview is the interactive presentation of a resolved document: an ordered
// list of typed sections that a client renders incrementally. It carries the
// same section sequence, text content, and break hints as the HTML target.
type Preview struct {
	TemplateID string           `json:"templateId"`
	Sections   []PreviewSection `json:"sections"`
}

// PreviewSection is one displayable section. Exactly one content field is
// populated according to Kind. PageBreakAfter is a hint that a forced page
// boundary follows this section.
type PreviewSection struct {
	Type           types.SectionType `json:"type"`
	Title          string            `json:"title"`
	Kind           layout.BlockKind  `json:"kind"`
	PageBreakAfter bool              `json:"pageBreakAfter"`

	Header   *layout.Header     `json:"header,omitempty"`
	RichText string             `json:"richText,omitempty"`
	Entries  []layout.EntryItem `json:"entries,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	Bullets  []string           `json:"bullets,omitempty"`
}

// RenderPreview produces the interactive preview for the resolved blocks.
// The template id is validated so preview and export fail identically on an
// unknown template.
func RenderPreview(blocks []layout.Block, styles types.StyleSettings) (Preview, error) {
	tpl, err := GetTemplate(styles.TemplateID)
	if err != nil {
		return Preview{}, err
	}

	sections := make([]PreviewSection, 0, len(blocks))
	for _, b := range blocks {
		sections = append(sections, PreviewSection{
			Type:           b.Section,
			Title:          b.Title,
			Kind:           b.Kind,
			PageBreakAfter: b.HasPageBreak,
			Header:         b.Header,
			RichText:       b.RichText,
			Entries:        b.Entries,
			Tags:           b.Tags,
			Bullets:        b.Bullets,
		})
	}
	return Preview{TemplateID: tpl.ID, Sections: sections}, nil
}
