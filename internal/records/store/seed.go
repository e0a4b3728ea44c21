package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"compliancedesk/internal/records/models"
)

// Identifier prefixes for each register.
const (
	DocumentPrefix = "DOC"
	NoticePrefix   = "LN"
	InwardPrefix   = "INR"
)

//go:embed seed.yaml
var embeddedSeed []byte

// Seed is the initial contents of every register.
type Seed struct {
	Documents []models.Document            `yaml:"documents"`
	Notices   []models.LegalNotice         `yaml:"notices"`
	Inward    []models.InwardRegisterEntry `yaml:"inward"`
}

// Stores bundles the three register stores.
type Stores struct {
	Documents *InMemory[models.Document]
	Notices   *InMemory[models.LegalNotice]
	Inward    *InMemory[models.InwardRegisterEntry]
}

// NewStores builds stores holding the seed.
func NewStores(seed Seed) *Stores {
	return &Stores{
		Documents: NewInMemory(DocumentPrefix, seed.Documents),
		Notices:   NewInMemory(NoticePrefix, seed.Notices),
		Inward:    NewInMemory(InwardPrefix, seed.Inward),
	}
}

// LoadSeed reads the seed at path, or the embedded seed when path is empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return ParseSeed(embeddedSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// DefaultSeed returns the embedded seed.
func DefaultSeed() Seed {
	seed, err := ParseSeed(embeddedSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return seed
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	for i := range seed.Notices {
		seed.Notices[i] = seed.Notices[i].Clone()
	}
	return seed, nil
}
