package catalog

import (
	_ "embed"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed categories.toml
var defaultGroupsTOML []byte

// Groups is the static parent-category -> leaf-category mapping. It is
// configuration, not derived from the catalog, and keeps the parent order of
// the source file for display.
type Groups struct {
	parents []string
	leaves  map[string][]string
}

// LoadGroups parses the groups file at path, or the embedded default when
// path is empty.
func LoadGroups(path string) (*Groups, error) {
	data := defaultGroupsTOML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read category groups: %w", err)
		}
	}

	var raw struct {
		Group []struct {
			Parent     string   `toml:"parent"`
			Categories []string `toml:"categories"`
		} `toml:"group"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse category groups: %w", err)
	}

	g := &Groups{leaves: make(map[string][]string, len(raw.Group))}
	for _, group := range raw.Group {
		if group.Parent == "" {
			continue
		}
		g.parents = append(g.parents, group.Parent)
		g.leaves[group.Parent] = group.Categories
	}
	return g, nil
}

// Parents returns parent labels in file order.
func (g *Groups) Parents() []string {
	return g.parents
}

// Leaves returns the leaf categories for a parent, nil for unknown parents.
func (g *Groups) Leaves(parent string) []string {
	return g.leaves[parent]
}

func (g *Groups) Known(parent string) bool {
	_, ok := g.leaves[parent]
	return ok
}

// LeafSet flattens the selected parents into one leaf-category membership set.
func (g *Groups) LeafSet(parents []string) map[string]bool {
	set := make(map[string]bool)
	for _, parent := range parents {
		for _, leaf := range g.leaves[parent] {
			set[leaf] = true
		}
	}
	return set
}
