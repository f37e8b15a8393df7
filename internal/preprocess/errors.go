package preprocess

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/nickwells/location.mod/location"

	"github.com/gubarz/mdpp/internal/directive"
	"github.com/gubarz/mdpp/internal/interpreter"
)

const (
	TextCodeUnclosed      = "DIRECTIVE_UNCLOSED"
	TextCodeMalformedMeta = "META_MALFORMED"
	TextCodeIO            = interpreter.TextCodeIO
	TextCodeUnknownKind   = "DIRECTIVE_UNKNOWN"
)

func unclosedError(d directive.Directive) error {
	return goerrors.New(
		fmt.Sprintf("%s directive was not closed, expected %q", d.Kind, d.Close),
		goerrors.CategoryBadInput,
	).WithTextCode(TextCodeUnclosed)
}

func malformedMetaError(content string) error {
	return goerrors.New(
		fmt.Sprintf("meta directive %q needs a name and a value separated by a space", content),
		goerrors.CategoryBadInput,
	).WithTextCode(TextCodeMalformedMeta)
}

func unknownKindError(d directive.Directive) error {
	return goerrors.New(
		fmt.Sprintf("no handler for directive kind %d opened by %q", int(d.Kind), d.Open),
		goerrors.CategoryInternal,
	).WithTextCode(TextCodeUnknownKind)
}

func wrapIOError(err error, op string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, op).
		WithTextCode(TextCodeIO)
}

// atLocation prefixes err with the source position it was raised at
func atLocation(err error, loc *location.L) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, loc.String())
}

// IsDocumentError reports whether err was caused by the document text rather
// than by the environment. Both abort the run the same way.
func IsDocumentError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryBadInput)
}
