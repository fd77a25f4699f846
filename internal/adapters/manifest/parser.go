// Package manifest parses package manifests (package.json) into package
// descriptors.
package manifest

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
	"github.com/xwine/fastpack/internal/core/domain"
	"github.com/xwine/fastpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestParser = (*Parser)(nil)

// Parser implements ports.ManifestParser for JSON manifests. Comments and
// trailing commas are tolerated, matching what package managers accept in
// the wild.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// manifestDTO mirrors the subset of package.json this layer cares about.
// The browser field is either a string (single replacement for the main
// entry) or a map of per-path substitutions.
type manifestDTO struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Module       string            `json:"module"`
	Browser      json.RawMessage   `json:"browser"`
	Dependencies map[string]string `json:"dependencies"`
}

// Parse parses the raw content of the manifest at path.
func (p *Parser) Parse(path string, content []byte) (*domain.Package, error) {
	var dto manifestDTO
	if err := json.Unmarshal(jsonc.ToJSON(content), &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	browser, err := parseBrowser(dto.Browser)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	return &domain.Package{
		Name:         dto.Name,
		Version:      dto.Version,
		Main:         dto.Main,
		Module:       dto.Module,
		Browser:      browser,
		Dependencies: dto.Dependencies,
	}, nil
}

// parseBrowser normalizes both forms of the browser field. The string form
// replaces the package entry point and is stored under the "." key.
func parseBrowser(raw json.RawMessage) (map[string]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return map[string]string{".": single}, nil
	}

	var substitutions map[string]string
	if err := json.Unmarshal(raw, &substitutions); err != nil {
		return nil, zerr.Wrap(err, "browser field is neither a string nor a map")
	}
	return substitutions, nil
}
