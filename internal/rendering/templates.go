package rendering

// Template describes a visual resume template. Templates differ only in
// decoration; the section sequence and text content are identical across all
// of them.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultTemplateID is the template used when none is selected.
const DefaultTemplateID = "modern"

var templates = []Template{
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Clean and professional design with colored accents",
	},
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional formal design with serif fonts",
	},
}

// Templates returns the registered templates in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// GetTemplate resolves a template by id.
func GetTemplate(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, &UnknownTemplateError{ID: id}
}

// IsKnownTemplate reports whether id resolves to a registered template.
func IsKnownTemplate(id string) bool {
	_, err := GetTemplate(id)
	return err == nil
}
