package hours

import "fmt"

// Error codes carried by ParseError.
const (
	CodeUnknownDay    = "unknownDay"
	CodeMissingDays   = "missingDays"
	CodeMalformedTime = "malformedTime"
)

// ParseError describes why a schedule entry was rejected in strict mode.
type ParseError struct {
	Entry   string
	Token   string
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s in %q", e.Code, e.Message, e.Entry)
	}
	return fmt.Sprintf("%s: %s %q in %q", e.Code, e.Message, e.Token, e.Entry)
}

func newParseError(code, entry, token, msg string) error {
	return &ParseError{
		Entry:   entry,
		Token:   token,
		Code:    code,
		Message: msg,
	}
}
