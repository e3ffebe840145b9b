// Package assets provides page templates and stylesheets for site generation.
//
// Assets are looked up by bare name ("default") within a kind: templates
// live in templates/{name}.html, stylesheets in styles/{name}.css. The same
// layout is used by the embedded defaults and by a custom directory:
//
//	{root}/
//	├── styles/
//	│   └── {name}.css     # written as index.css when the site has none
//	└── templates/
//	    └── {name}.html    # page template with {{ Title }} and {{ Content }}
//
// AssetResolver chains a FilesystemLoader over the custom directory in
// front of the EmbeddedLoader. A name missing from the custom directory
// falls back to the embedded asset, so a site can override one template and
// keep the default stylesheet.
//
// Names are restricted to letters, digits, '-' and '_'. FilesystemLoader
// also resolves symlinks and rejects files outside its root.
package assets
