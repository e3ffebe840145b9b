package assets

import "errors"

// AssetResolver tries its loaders in order and returns the first hit.
// A not-found miss moves on to the next loader; any other error stops the
// search, so an invalid name never silently resolves to a built-in asset.
type AssetResolver struct {
	loaders []AssetLoader // custom directory first, embedded last
}

// NewAssetResolver creates an AssetResolver over the embedded assets,
// preceded by customBasePath when it is set.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, custom)
	}
	r.loaders = append(r.loaders, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle loads a stylesheet from the first loader that has it.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads a page template from the first loader that has it.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.loaders {
		var content string
		if content, err = load(l); err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a custom directory is searched.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.loaders) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
