// Package catalog loads product collections for the card carousel from YAML
// files or directories of YAML files, and ships a built-in sample catalog
// for the demo.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/slidekit/slidekit/internal/carousel"
)

// Product is a single catalog entry. Products implement carousel.Item so a
// collection can feed the widget directly.
type Product struct {
	// ID is a stable identifier. Entries without one get a ULID on load.
	ID string `yaml:"id,omitempty"`

	// Name is the display title.
	Name string `yaml:"name"`

	// Price is the unit price in Currency.
	Price float64 `yaml:"price"`

	// Currency is an ISO 4217 code. Empty falls back to the configured
	// display currency.
	Currency string `yaml:"currency,omitempty"`

	// Tag is an optional short badge, e.g. "sale" or "new".
	Tag string `yaml:"tag,omitempty"`

	// Description is optional card body text.
	Description string `yaml:"description,omitempty"`
}

// ItemID implements carousel.Item.
func (p Product) ItemID() string { return p.ID }

// file is the on-disk YAML shape.
type file struct {
	Products []Product `yaml:"products"`
}

// Load reads products from path, which may be a single YAML file or a
// directory of YAML files. Directory entries are concatenated in filename
// order. Products without an ID are assigned a fresh ULID.
func Load(ctx context.Context, path string) ([]Product, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog path %s: %w", path, err)
	}

	if info.IsDir() {
		return loadDir(ctx, path)
	}
	return loadFile(path)
}

// loadFile parses one catalog file and fills in missing IDs.
func loadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML from %s: %w", path, err)
	}

	for i := range f.Products {
		if f.Products[i].ID == "" {
			f.Products[i].ID = ulid.Make().String()
		}
	}
	return f.Products, nil
}

// loadDir parses every .yaml/.yml file in dir concurrently and concatenates
// the results in filename order.
func loadDir(ctx context.Context, dir string) ([]Product, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	results := make([][]Product, len(names))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			products, loadErr := loadFile(filepath.Join(dir, name))
			if loadErr != nil {
				return loadErr
			}
			results[i] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var products []Product
	for _, batch := range results {
		products = append(products, batch...)
	}
	return products, nil
}

// Validate reports entries that would render badly.
func Validate(products []Product) []error {
	var errs []error
	for i, p := range products {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("product %d (%s): missing name", i, p.ID))
		}
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("product %d (%s): negative price %g", i, p.ID, p.Price))
		}
	}
	return errs
}

// Items adapts a product slice to the widget's item interface.
func Items(products []Product) []carousel.Item {
	items := make([]carousel.Item, len(products))
	for i, p := range products {
		items[i] = p
	}
	return items
}
