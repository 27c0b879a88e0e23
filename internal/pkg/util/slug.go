package util

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugify derives a URL slug from a post title, using underscores as the
// word separator.
func Slugify(title string) string {
	return strings.ReplaceAll(slug.Make(title), "-", "_")
}
