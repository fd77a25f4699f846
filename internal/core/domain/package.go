package domain

// Package is the parsed form of a package manifest (package.json). It is
// produced by the manifest parser and cached alongside the manifest's file
// entry.
type Package struct {
	Name    string `cbor:"name"`
	Version string `cbor:"version"`
	Main    string `cbor:"main"`
	Module  string `cbor:"module"`

	// Browser holds the manifest's browser field substitutions. The string
	// form of the field is normalized to a single "." mapping by the parser.
	Browser map[string]string `cbor:"browser,omitempty"`

	Dependencies map[string]string `cbor:"dependencies,omitempty"`
}

// EmptyPackage returns the default package used when no manifest exists at
// or below the project root.
func EmptyPackage() *Package {
	return &Package{}
}
