package parser

import (
	"errors"

	"github.com/dhamidi/snek/token"
)

// ErrNestingTooDeep is wrapped by the SyntaxError returned when source
// nesting exceeds the configured maximum depth.
var ErrNestingTooDeep = errors.New("nesting too deep")

// SyntaxError is the only error a parse returns. Found is the offending
// token, or nil when the input ended early or the error came from the lexer.
type SyntaxError struct {
	Message string
	Pos     token.Position
	Found   *token.Token
	Err     error
}

func (e *SyntaxError) Error() string {
	if !e.Pos.IsValid() {
		return e.Message
	}
	return e.Pos.String() + ": " + e.Message
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// AtEnd reports whether the error was caused by running out of input.
func (e *SyntaxError) AtEnd() bool {
	return e.Found == nil && e.Err == nil
}
