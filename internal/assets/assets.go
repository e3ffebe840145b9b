package assets

// Default asset names.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet by bare name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded page template by bare name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// TemplateNames lists the embedded template names, sorted.
func TemplateNames() []string {
	return defaultLoader.names(templateKind)
}
