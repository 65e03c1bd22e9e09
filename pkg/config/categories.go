// ABOUTME: Category configuration: feed sources and trend keywords per category
// ABOUTME: Loaded from a YAML file with an embedded default set

package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_categories.yaml
var defaultCategoriesFS embed.FS

// Category is one configured category: an ordered list of feed source URLs
// and the keywords that mark an item as trending.
type Category struct {
	Name          string   `yaml:"name"`
	Feeds         []string `yaml:"feeds"`
	TrendKeywords []string `yaml:"trend_keywords"`
}

// Categories is the full category configuration.
type Categories struct {
	DefaultCategory   string     `yaml:"default_category"`
	RecentWindowHours int        `yaml:"recent_window_hours"`
	MaxSavedDisplay   int        `yaml:"max_saved_display"`
	MaxFeedDisplay    int        `yaml:"max_feed_display"`
	List              []Category `yaml:"categories"`
}

// LoadCategories reads the category configuration from path, falling back to
// the embedded defaults when path is empty.
func LoadCategories(path string) (*Categories, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = defaultCategoriesFS.ReadFile("default_categories.yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded categories: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading categories file: %w", err)
		}
	}

	var cats Categories
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}

	cats.applyDefaults()
	if err := cats.Validate(); err != nil {
		return nil, err
	}
	return &cats, nil
}

func (c *Categories) applyDefaults() {
	if c.RecentWindowHours == 0 {
		c.RecentWindowHours = 48
	}
	if c.MaxSavedDisplay == 0 {
		c.MaxSavedDisplay = 10
	}
	if c.MaxFeedDisplay == 0 {
		c.MaxFeedDisplay = 10
	}
	if c.DefaultCategory == "" && len(c.List) > 0 {
		c.DefaultCategory = c.List[0].Name
	}
}

// Validate checks the category configuration for consistency.
func (c *Categories) Validate() error {
	if len(c.List) == 0 {
		return fmt.Errorf("at least one category must be configured")
	}
	if !c.IsValid(c.DefaultCategory) {
		return fmt.Errorf("default category %q is not a configured category", c.DefaultCategory)
	}
	if c.RecentWindowHours < 1 {
		return fmt.Errorf("recent window must be at least one hour")
	}
	seen := make(map[string]bool, len(c.List))
	for i, cat := range c.List {
		if cat.Name == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
		if seen[cat.Name] {
			return fmt.Errorf("category %q: duplicate name", cat.Name)
		}
		seen[cat.Name] = true
		for _, feed := range cat.Feeds {
			u, err := url.Parse(feed)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
				return fmt.Errorf("category %q: invalid feed url %q", cat.Name, feed)
			}
		}
	}
	return nil
}

// Names returns the configured category names in order.
func (c *Categories) Names() []string {
	names := make([]string, 0, len(c.List))
	for _, cat := range c.List {
		names = append(names, cat.Name)
	}
	return names
}

// IsValid reports whether name is a configured category.
func (c *Categories) IsValid(name string) bool {
	for _, cat := range c.List {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// Resolve returns name when it is a configured category, otherwise the
// default category.
func (c *Categories) Resolve(name string) string {
	if c.IsValid(name) {
		return name
	}
	return c.DefaultCategory
}

// RecentWindow returns the recency window as a duration.
func (c *Categories) RecentWindow() time.Duration {
	return time.Duration(c.RecentWindowHours) * time.Hour
}
