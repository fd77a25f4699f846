package domain

// BuildState tags the pipeline stage a cached module was recorded at.
type BuildState uint8

const (
	// StateInitial means the module content has been loaded but not processed.
	StateInitial BuildState = iota
	// StatePreprocessed means preprocessors have run over the content.
	StatePreprocessed
	// StateAnalyzed means static analysis has completed.
	StateAnalyzed
)

// ModuleType tags the module system a module was authored in.
type ModuleType uint8

const (
	// TypeCJS is a CommonJS module.
	TypeCJS ModuleType = iota
	// TypeCJSEsModule is a CommonJS module with an __esModule marker.
	TypeCJSEsModule
	// TypeESM is an ECMAScript module.
	TypeESM
)

// EmittedFile is a named output produced while building a module.
type EmittedFile struct {
	Name    string `cbor:"name"`
	Content []byte `cbor:"content"`
}

// ResolvedDependency pairs a dependency request with the location it
// resolved to at build time.
type ResolvedDependency struct {
	Request  InternedString `cbor:"request"`
	Location Location       `cbor:"location"`
}

// Module is the cached build output for a single module location.
//
// Scope and Exports are produced by the build pipeline's static analysis and
// stored verbatim; this layer never interprets them. BuildDependencies maps
// every file whose content contributed to the build output to the digest it
// had at build time; the module stays valid only while all of them match.
type Module struct {
	ID       InternedString `cbor:"id"`
	Location Location       `cbor:"location"`
	State    BuildState     `cbor:"state"`
	Package  Package        `cbor:"package"`
	Type     ModuleType     `cbor:"module_type"`

	Files   []EmittedFile `cbor:"files"`
	Content string        `cbor:"content"` // serialized workspace snapshot

	BuildDependencies    map[string]string    `cbor:"build_dependencies"` // path -> digest
	ResolvedDependencies []ResolvedDependency `cbor:"resolved_dependencies"`

	Scope   []byte `cbor:"scope"`
	Exports []byte `cbor:"exports"`

	// Workspace is reconstructed from Content on a cache hit. It is never
	// persisted.
	Workspace *Workspace `cbor:"-"`
}

// Workspace is the runtime representation of a module's processed source,
// reconstructed lazily from the serialized content of a cached module.
type Workspace struct {
	Value string
}
