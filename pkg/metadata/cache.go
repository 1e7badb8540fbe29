package metadata

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Record is one recipe entry in the metadata cache file.
type Record struct {
	File            string   `yaml:"file" json:"file"`
	Name            string   `yaml:"name" json:"name"`
	Provides        []string `yaml:"provides,omitempty" json:"provides,omitempty"`
	Packages        []string `yaml:"packages,omitempty" json:"packages,omitempty"`
	Rprovides       []string `yaml:"rprovides,omitempty" json:"rprovides,omitempty"`
	PackagesDynamic []string `yaml:"packages_dynamic,omitempty" json:"packagesDynamic,omitempty"`
	Depends         []string `yaml:"depends,omitempty" json:"depends,omitempty"`
}

// cacheFile is the on-disk shape of the metadata cache.
type cacheFile struct {
	Recipes []Record `yaml:"recipes"`
}

// Cache is a Provider backed by a metadata cache file. All forward maps are
// built once at load time and never mutated afterward.
type Cache struct {
	pkgFn      map[string]string   // filename -> recipe name
	fnProvides map[string][]string // filename -> build-time provides
	fnDepends  map[string][]string // filename -> declared dependencies
	rproviders map[string][]string // runtime provide -> filenames
	packages   map[string][]string // package -> filenames
	dynamic    map[string][]string // dynamic pattern -> filenames
	providers  map[string][]string // recipe name or provide -> filenames
	preferred  []string            // one filename per recipe name, file order
}

// Load reads the metadata cache from a file.
func Load(path string) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %v", ErrUnavailable, path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a metadata cache document from r.
func Read(r io.Reader) (*Cache, error) {
	var cf cacheFile
	if err := yaml.NewDecoder(r).Decode(&cf); err != nil {
		return nil, fmt.Errorf("%w: decoding cache: %v", ErrUnavailable, err)
	}
	return New(cf.Recipes)
}

// New builds a Cache from recipe records. When multiple records share a
// recipe name, the first one is the preferred filename for that name.
func New(records []Record) (*Cache, error) {
	c := &Cache{
		pkgFn:      make(map[string]string, len(records)),
		fnProvides: make(map[string][]string, len(records)),
		fnDepends:  make(map[string][]string, len(records)),
		rproviders: make(map[string][]string),
		packages:   make(map[string][]string),
		dynamic:    make(map[string][]string),
		providers:  make(map[string][]string, len(records)),
	}

	named := make(map[string]bool, len(records))
	for i, r := range records {
		if r.File == "" || r.Name == "" {
			return nil, fmt.Errorf("%w: record %d is missing file or name", ErrUnavailable, i)
		}
		if _, dup := c.pkgFn[r.File]; dup {
			return nil, fmt.Errorf("%w: duplicate filename %q", ErrUnavailable, r.File)
		}

		c.pkgFn[r.File] = r.Name
		c.fnProvides[r.File] = append([]string(nil), r.Provides...)
		c.fnDepends[r.File] = append([]string(nil), r.Depends...)

		for _, p := range r.Packages {
			c.packages[p] = append(c.packages[p], r.File)
		}
		for _, p := range r.Rprovides {
			c.rproviders[p] = append(c.rproviders[p], r.File)
		}
		for _, p := range r.PackagesDynamic {
			c.dynamic[p] = append(c.dynamic[p], r.File)
		}

		c.providers[r.Name] = append(c.providers[r.Name], r.File)
		for _, p := range r.Provides {
			c.providers[p] = append(c.providers[p], r.File)
		}

		if !named[r.Name] {
			named[r.Name] = true
			c.preferred = append(c.preferred, r.File)
		}
	}

	return c, nil
}

func (c *Cache) RecipeName(fn string) string {
	return c.pkgFn[fn]
}

func (c *Cache) Provides(fn string) []string {
	return c.fnProvides[fn]
}

func (c *Cache) Rproviders() map[string][]string {
	return c.rproviders
}

func (c *Cache) Packages() map[string][]string {
	return c.packages
}

func (c *Cache) PackagesDynamic() map[string][]string {
	return c.dynamic
}

func (c *Cache) PreferredFilenames() []string {
	return c.preferred
}
