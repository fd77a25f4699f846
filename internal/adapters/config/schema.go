package config

// Fastpackfile represents the structure of the fastpack.yaml configuration
// file.
type Fastpackfile struct {
	Root     string   `yaml:"root"`
	Entry    string   `yaml:"entry"`
	Manifest string   `yaml:"manifest"`
	Cache    CacheDTO `yaml:"cache"`
}

// CacheDTO configures the cache layer.
type CacheDTO struct {
	// Mode is "persistent" (default) or "memory".
	Mode string `yaml:"mode"`
	// Path overrides the snapshot location, relative to the project root.
	Path string `yaml:"path"`
}
