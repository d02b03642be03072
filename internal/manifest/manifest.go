// Package manifest reads the plugin manifest with explicit key presence.
//
// Validation rules need to distinguish "field absent" from "field present
// but empty" (notably fundingUrl), so the manifest is decoded both into a
// typed record and into the set of top-level keys actually present in the
// document, preserving document order.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Filename is the well-known manifest location relative to the project root.
const Filename = "manifest.json"

// RequiredFields lists the keys every manifest must carry.
var RequiredFields = []string{
	"id",
	"name",
	"description",
	"author",
	"version",
	"minAppVersion",
	"isDesktopOnly",
}

// OptionalFields lists the keys a manifest may carry in addition to the
// required ones.
var OptionalFields = []string{
	"authorUrl",
	"fundingUrl",
	"helpUrl",
}

// AllowedField reports whether key belongs to the union of required and
// optional manifest fields.
func AllowedField(key string) bool {
	for _, f := range RequiredFields {
		if key == f {
			return true
		}
	}
	for _, f := range OptionalFields {
		if key == f {
			return true
		}
	}
	return false
}

// Manifest is the decoded plugin manifest.
type Manifest struct {
	ID            string
	Name          string
	Description   string
	Author        string
	Version       string
	MinAppVersion string
	IsDesktopOnly bool
	AuthorURL     string
	FundingURL    string
	HelpURL       string

	keys    []string
	present map[string]bool
}

// Has reports whether key was present in the manifest document, even if
// its value was empty or falsy.
func (m *Manifest) Has(key string) bool {
	return m.present[key]
}

// Keys returns the top-level keys of the manifest document in document
// order.
func (m *Manifest) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Load reads and parses the manifest at its well-known location under
// root.
func Load(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, Filename))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var fields struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Description   string `json:"description"`
		Author        string `json:"author"`
		Version       string `json:"version"`
		MinAppVersion string `json:"minAppVersion"`
		IsDesktopOnly bool   `json:"isDesktopOnly"`
		AuthorURL     string `json:"authorUrl"`
		FundingURL    string `json:"fundingUrl"`
		HelpURL       string `json:"helpUrl"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	keys, err := topLevelKeys(data)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		ID:            fields.ID,
		Name:          fields.Name,
		Description:   fields.Description,
		Author:        fields.Author,
		Version:       fields.Version,
		MinAppVersion: fields.MinAppVersion,
		IsDesktopOnly: fields.IsDesktopOnly,
		AuthorURL:     fields.AuthorURL,
		FundingURL:    fields.FundingURL,
		HelpURL:       fields.HelpURL,
		keys:          keys,
		present:       make(map[string]bool, len(keys)),
	}
	for _, key := range keys {
		m.present[key] = true
	}

	return m, nil
}

// topLevelKeys returns the keys of the document's top-level object in
// document order.
func topLevelKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in manifest", tok)
		}
		keys = append(keys, key)

		var discard any
		if err := dec.Decode(&discard); err != nil {
			return nil, err
		}
	}

	return keys, nil
}
