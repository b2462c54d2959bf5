package importing

import (
	"fmt"

	"github.com/sendikahq/sendika/pkg/serrors"
)

// File-level problems are fatal and coded; row-level problems are data and
// travel as RowIssue values inside reports.
var (
	ErrEmptyFile    = serrors.NewError("IMPORT_FILE_EMPTY", "file is empty or has no header row", "")
	ErrFileTooLarge = serrors.NewError("IMPORT_FILE_TOO_LARGE", "file exceeds the maximum allowed size", "")
	ErrTooManyRows  = serrors.NewError("IMPORT_TOO_MANY_ROWS", "file exceeds the maximum allowed row count", "")
)

// ValidationError aborts a bulk import when skipErrors is off: it carries
// every row issue found and guarantees that nothing was persisted.
type ValidationError struct {
	Issues []RowIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("import aborted: %d validation errors", len(e.Issues))
}
