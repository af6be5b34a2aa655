package config

// Site is the decoded linkbio.yaml document. The named fields cover the keys
// the stock templates reference; anything else the author puts at the top
// level lands in Extra and stays template-visible through Bindings.
type Site struct {
	Username    string         `yaml:"username"`
	Title       string         `yaml:"title"`
	Avatar      string         `yaml:"avatar"`
	URL         string         `yaml:"url"`
	Description string         `yaml:"description"`
	NameAuthor  string         `yaml:"name_author"`
	URLAuthor   string         `yaml:"url_author"`
	Nav         []NavLink      `yaml:"nav"`
	Social      []Social       `yaml:"social"`
	Extra       map[string]any `yaml:"-"`

	bindings map[string]any
}

type NavLink struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

type Social struct {
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// Bindings returns every top-level key of the document, known and extra,
// as the name->value mapping handed to the markup template.
func (s *Site) Bindings() map[string]any {
	return s.bindings
}

var knownKeys = map[string]bool{
	"username":    true,
	"title":       true,
	"avatar":      true,
	"url":         true,
	"description": true,
	"name_author": true,
	"url_author":  true,
	"nav":         true,
	"social":      true,
}
