package loader

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi"
	validator "github.com/pb33f/libopenapi-validator"
	validatorErrors "github.com/pb33f/libopenapi-validator/errors"

	"github.com/specslice/specslice/internal/model"
	"github.com/specslice/specslice/internal/specerr"
)

// Check reports structural problems that keep the pipeline from producing
// useful output. It enforces only the fields this tool relies on, not the
// full document grammar.
func Check(doc *model.Document) error {
	if doc.Title == "" {
		return specerr.Invalid("document has no title")
	}
	if doc.Version == "" {
		return specerr.Invalid("document has no version")
	}
	if len(doc.Paths) == 0 {
		return specerr.Invalid("document declares no paths")
	}
	return nil
}

// ValidateBytes runs the full document validator over a raw 3.x document.
// Swagger 2.0 documents are skipped, the validator does not speak that
// dialect.
func ValidateBytes(data []byte) []error {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return []error{fmt.Errorf("parsing document: %w", err)}
	}
	if !strings.HasPrefix(doc.GetVersion(), "3.") {
		return nil
	}

	v, errs := validator.NewValidator(doc)
	if len(errs) > 0 {
		return errs
	}

	valid, findings := v.ValidateDocument()
	if valid {
		return nil
	}
	out := make([]error, 0, len(findings))
	for _, f := range findings {
		out = append(out, formatFinding(f))
	}
	return out
}

func formatFinding(f *validatorErrors.ValidationError) error {
	if f.Reason != "" {
		return fmt.Errorf("%s: %s", f.Message, f.Reason)
	}
	return fmt.Errorf("%s", f.Message)
}
