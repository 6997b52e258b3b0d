// Package fixture loads the static seed records the catalog is built from.
//
// A Set holds three ordered sequences (users, categories, products). It is
// loaded once at startup and must not be modified afterwards. Dangling
// references between the sequences are allowed here; they are resolved (or
// not) by the join in package catalog.
package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abelbrown/catalog/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/catalog.yaml
var defaultCatalog []byte

var (
	// ErrDuplicateID is returned when two records of the same kind share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnsupportedFormat is returned for fixture files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported fixture format")
)

// Format is the encoding of a fixture document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Set is the complete fixture data: three immutable ordered sequences.
type Set struct {
	Users      []model.User     `json:"users" yaml:"users" validate:"dive"`
	Categories []model.Category `json:"categories" yaml:"categories" validate:"dive"`
	Products   []model.Product  `json:"products" yaml:"products" validate:"dive"`
}

// Default returns the fixtures compiled into the binary.
func Default() (Set, error) {
	return Load(bytes.NewReader(defaultCatalog), FormatYAML)
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// LoadFile reads and validates a fixture file.
func LoadFile(path string) (Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Set{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	set, err := Load(f, format)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load decodes a fixture document and validates it.
// Unknown fields are rejected so that typos in hand-written fixtures surface.
func Load(r io.Reader, format Format) (Set, error) {
	var set Set

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
			return Set{}, fmt.Errorf("decode json: %w", err)
		}
	default:
		return Set{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := Validate(set); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks field constraints and id uniqueness.
// References between collections are not checked.
func Validate(set Set) error {
	if err := validateStruct(set); err != nil {
		return err
	}

	var errs []error
	errs = append(errs, duplicates("user", set.Users, func(u model.User) int { return u.ID })...)
	errs = append(errs, duplicates("category", set.Categories, func(c model.Category) int { return c.ID })...)
	errs = append(errs, duplicates("product", set.Products, func(p model.Product) int { return p.ID })...)
	return errors.Join(errs...)
}

func duplicates[T any](kind string, records []T, id func(T) int) []error {
	seen := make(map[int]bool, len(records))
	var errs []error
	for _, r := range records {
		key := id(r)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%w: %s %d", ErrDuplicateID, kind, key))
			continue
		}
		seen[key] = true
	}
	return errs
}
