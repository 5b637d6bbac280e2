package pattern

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewDocumentFilename derives the filename for a rendered pattern document:
// <style-slug>_<fit>_pattern_<timestamp>_<nanoid(8)>.pdf. The nanoid suffix
// keeps concurrent generations in the same second from colliding.
func NewDocumentFilename(garmentStyle string, fit FitCategory, now time.Time) (string, error) {
	id, err := gonanoid.New(8)
	if err != nil {
		return "", err
	}
	slug := strings.ReplaceAll(strings.ToLower(garmentStyle), " ", "_")
	return fmt.Sprintf("%s_%s_pattern_%s_%s.pdf", slug, fit, now.Format("20060102_150405"), id), nil
}
