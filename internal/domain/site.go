package domain

// Visual is an entry of the visuals gallery.
type Visual struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl" validate:"required"`
	Alt         string `json:"alt,omitempty" yaml:"alt"`
	Link        string `json:"link,omitempty" yaml:"link" validate:"omitempty,url"`
}

// AltText falls back to the title when no alt text was configured.
func (v Visual) AltText() string {
	if v.Alt != "" {
		return v.Alt
	}
	return v.Title
}

// Track is a recording in the audio archive.
type Track struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Year        int    `json:"year" yaml:"year" validate:"required,gt=1900"`
	URL         string `json:"url" yaml:"url" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description"`
}
