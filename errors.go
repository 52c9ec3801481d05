package persona

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidField reports a choice aimed at a path that does not name a
	// currently choosable field.
	CodeInvalidField = "invalid_field"
	// CodeInvalidChoice reports a value rejected by the field it targeted.
	CodeInvalidChoice = "invalid_choice"
	// CodeSchemaInvalid reports a malformed schema definition (duplicate field,
	// empty name, and so on).
	CodeSchemaInvalid = "schema_invalid"
	// CodeUnknownKey reports an unrecognized key in a schema or choice document.
	CodeUnknownKey = "unknown_key"
	// CodeParseError reports unreadable input in one of the document formats.
	CodeParseError = "parse_error"
)

// Issue represents a single rejected choice or definition entry.
type Issue struct {
	Path    string // Dot path (for example: class.spell). Empty means the root.
	Code    string // One of the codes listed above.
	Message string // Reason text, e.g. "must be number". Empty when no reason exists.
	Value   any    // Offending value, when one was submitted.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"options":["warrior","mage"]})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of rejections that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_choice at class: must be one of [warrior, mage]
		fmt.Fprintf(b, "%s at %s", it.Code, displayPath(it.Path))
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with the provided code, message
// and params map. This is a convenience helper to improve readability at call
// sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}

func displayPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}

func invalidFieldIssue(path string) Issue {
	return Issue{Path: path, Code: CodeInvalidField}
}

func invalidChoiceIssue(path string, value any, reason string, params map[string]any) Issue {
	return Issue{Path: path, Code: CodeInvalidChoice, Message: reason, Value: value, Params: params}
}
