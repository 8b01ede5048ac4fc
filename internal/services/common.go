package services

import (
	"strings"

	"github.com/joshua-takyi/eventhub/internal/apperr"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// Options carries the tunables services share.
type Options struct {
	MaxCommentLength int
	DefaultPageSize  int
	MaxPageSize      int
}

func DefaultOptions() Options {
	return Options{
		MaxCommentLength: 500,
		DefaultPageSize:  20,
		MaxPageSize:      100,
	}
}

func (o Options) page(p models.PageRequest) models.PageRequest {
	return p.Normalize(o.DefaultPageSize, o.MaxPageSize)
}

func set[T any](updates map[string]any, column string, v *T) {
	if v != nil {
		updates[column] = *v
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := helpers.StringTrim(*s)
	return &t
}

func normalizeCode(code string) string {
	return strings.ToUpper(helpers.StringTrim(code))
}

// duplicateAsConflict turns a unique-index violation on a composite key into
// the Conflict the caller expects.
func duplicateAsConflict(err error, entity apperr.Entity, op, format string, args ...any) error {
	if apperr.IsKind(err, apperr.KindDuplicateKey) {
		return apperr.Conflict(entity, op, format, args...)
	}
	return err
}
