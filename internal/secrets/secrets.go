// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads caller identification from a directory of plain-text
// files. Each file holds one value: the filename is the key and the trimmed
// contents are the value.
//
// Recognized keys: ncbi-email, ncbi-tool.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// DefaultDir is the directory the CLI reads at startup.
const DefaultDir = ".secrets/"

const (
	KeyNCBIEmail = "ncbi-email"
	KeyNCBITool  = "ncbi-tool"
)

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads all files in dir. A missing directory is not an error and
// yields an empty set. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Get returns the value of key, or fallback when it is absent.
func (s Secrets) Get(key, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

// Keys returns the loaded key names, sorted.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply fills the NCBI tool and email of cfg from the secrets when the
// configuration leaves them empty. Configured values always win.
func (s Secrets) Apply(cfg *types.PubMedConfig) {
	if cfg.Email == "" {
		cfg.Email = s.Get(KeyNCBIEmail, "")
	}
	if cfg.Tool == "" {
		cfg.Tool = s.Get(KeyNCBITool, "")
	}
}
