package scaffold

import "github.com/cockroachdb/errors"

// Catalog is the ordered set of known template identifiers. The first entry
// is the fallback for unrecognized choices.
type Catalog struct {
	ids []string
}

// NewCatalog builds a catalog from ids. At least one id is required.
func NewCatalog(ids ...string) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, errors.New("template catalog is empty")
	}
	c := &Catalog{ids: make([]string, len(ids))}
	copy(c.ids, ids)
	return c, nil
}

// Default returns the fallback template.
func (c *Catalog) Default() string { return c.ids[0] }

// IDs returns the catalog entries in order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Contains reports whether id is a known template. Matching is exact.
func (c *Catalog) Contains(id string) bool {
	for _, v := range c.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Select returns choice when it is in the catalog and the default otherwise.
// An unrecognized choice is not an error.
func (c *Catalog) Select(choice string) string {
	if c.Contains(choice) {
		return choice
	}
	return c.Default()
}
