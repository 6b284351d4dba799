package loader

import (
	"fmt"
	"strings"

	"github.com/jaym/kapchunk/kaltura"
)

type criterionKind int

const (
	criterionUnset criterionKind = iota
	criterionMediaID
	criterionCategory
)

// Criterion selects which media entries a load processes: a single entry
// by id, or every entry in a category. The zero Criterion is invalid.
type Criterion struct {
	kind  criterionKind
	value string
}

// MediaID selects a single media entry by its id.
func MediaID(id string) Criterion {
	return Criterion{kind: criterionMediaID, value: id}
}

// Category selects every media entry whose category matches the given full
// path, e.g. "site>channel>courses>course name".
func Category(path string) Criterion {
	return Criterion{kind: criterionCategory, value: path}
}

// ParseCriterion builds a Criterion from configuration strings. The kind is
// matched case-insensitively against "mediaid" and "category".
func ParseCriterion(kind, value string) (Criterion, error) {
	if value == "" {
		return Criterion{}, &ConfigurationError{Msg: "filter value must be specified"}
	}
	switch strings.ToLower(kind) {
	case "mediaid":
		return MediaID(value), nil
	case "category":
		return Category(value), nil
	default:
		return Criterion{}, &ConfigurationError{
			Msg: fmt.Sprintf("invalid filter type %q, expected mediaid or category", kind),
		}
	}
}

func (c Criterion) validate() error {
	if c.kind == criterionUnset {
		return &ConfigurationError{Msg: "media filter is not defined"}
	}
	if c.value == "" {
		return &ConfigurationError{Msg: "filter value must be specified"}
	}
	return nil
}

func (c Criterion) mediaFilter() kaltura.MediaFilter {
	switch c.kind {
	case criterionMediaID:
		return kaltura.MediaFilter{IDEqual: c.value}
	case criterionCategory:
		return kaltura.MediaFilter{CategoriesMatchAnd: c.value}
	default:
		return kaltura.MediaFilter{}
	}
}
