package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// The document template is embedded at compile time so the renderer works
// without any filesystem layout assumptions.
//
//go:embed resume.html.tmpl
var templateFiles embed.FS

var docTemplate = template.Must(
	template.New("resume.html.tmpl").
		Funcs(template.FuncMap{
			// Stored rich text is trusted formatting markup carried through
			// verbatim, never reinterpreted.
			"raw": func(s string) template.HTML { return template.HTML(s) },
			// Photos arrive as data: URLs, which the contextual sanitizer
			// would otherwise reject.
			"safeurl": func(s string) template.URL { return template.URL(s) },
		}).
		ParseFS(templateFiles, "resume.html.tmpl"),
)

type htmlData struct {
	CSS     template.CSS
	Variant string
	Blocks  []layout.Block
}

// RenderHTML produces a complete standalone HTML document for the resolved
// blocks, styled per the selected template. The output embeds all styling
// inline and is suitable for handing to a headless browser.
func RenderHTML(blocks []layout.Block, styles types.StyleSettings) (string, error) {
	tpl, err := GetTemplate(styles.TemplateID)
	if err != nil {
		return "", err
	}

	data := htmlData{
		CSS:     template.CSS(documentCSS(styles, tpl.ID)),
		Variant: tpl.ID,
		Blocks:  blocks,
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return buf.String(), nil
}

// documentCSS builds the full stylesheet: base page rules parameterized by the
// style settings plus the decoration block of the selected template.
func documentCSS(styles types.StyleSettings, variant string) string {
	base := fmt.Sprintf(`
    body {
      font-family: %s, sans-serif;
      font-size: %gpx;
      line-height: %g;
      width: 816px;
      margin: 0 auto;
      background: white;
      color: #000;
    }

    .page-break {
      page-break-before: always;
      break-before: page;
      height: 1px;
      width: 100%%;
      border: none;
      margin: 0;
    }

    h1, h2, h3 {
      page-break-after: avoid;
      break-after: avoid;
    }

    .entry {
      page-break-inside: avoid;
      break-inside: avoid;
      margin-bottom: 1rem;
    }

    .section {
      margin-bottom: 1.5rem;
    }

    .entry-head {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
    }

    .contact-grid {
      display: flex;
      flex-wrap: wrap;
      gap: 0.5rem 1.5rem;
      font-size: 0.9rem;
      color: #374151;
    }

    .photo {
      width: 96px;
      height: 96px;
      object-fit: cover;
    }

    @media print {
      body {
        width: 100%%;
        margin: 0;
      }

      .page-break {
        page-break-before: always;
      }
    }
`, styles.FontFamily, styles.FontSize, styles.LineHeight)

	return base + variantCSS(styles, variant)
}

func variantCSS(styles types.StyleSettings, variant string) string {
	if variant == "classic" {
		return `
    .classic-header {
      text-align: center;
      border-bottom: 3px double #6b7280;
      padding-bottom: 1rem;
      margin-bottom: 1.5rem;
    }
    .classic-header h1 {
      font-size: 2.2rem;
      font-weight: bold;
      color: #1f2937;
      margin-bottom: 0.5rem;
      font-family: 'Times New Roman', 'Georgia', serif;
    }
    .classic-header .contact-grid {
      justify-content: center;
    }
    .classic-section {
      font-family: 'Times New Roman', 'Georgia', serif;
    }
    .classic-section h2 {
      font-size: 1.1rem;
      font-weight: bold;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      color: #374151;
      border-bottom: 1px solid #d1d5db;
      padding-bottom: 0.25rem;
      margin-bottom: 1rem;
    }
    .classic-section .entry-date {
      font-size: 0.9rem;
      color: #6b7280;
      font-style: italic;
    }
    .classic-section .tag {
      display: inline;
      color: #374151;
      margin-right: 1rem;
    }
`
	}

	return fmt.Sprintf(`
    .modern-header h1 {
      font-size: 2rem;
      font-weight: bold;
      color: %[1]s;
      margin-bottom: 0.5rem;
    }
    .modern-header .subtitle {
      font-size: 1.1rem;
      color: #6b7280;
      margin-bottom: 1rem;
    }
    .modern-section h2 {
      font-size: 1.25rem;
      font-weight: 600;
      color: %[1]s;
      border-bottom: 2px solid %[1]s;
      padding-bottom: 0.25rem;
      margin-bottom: 1rem;
    }
    .modern-section .tag {
      display: inline-block;
      background: %[1]s;
      color: white;
      padding: 0.25rem 0.75rem;
      border-radius: 1rem;
      font-size: 0.875rem;
      margin: 0.125rem;
    }
`, styles.PrimaryColor)
}
