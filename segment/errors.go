package segment

import (
	"errors"
	"fmt"
)

// ErrUnhandledChar is returned when no segmentation rule matches a character.
var ErrUnhandledChar = errors.New("segment: unhandled character")

// ErrInvalidSign is returned when a constructed sign falls outside the
// Allowed Sign Set. It indicates a defect in the rule tables, not bad input.
var ErrInvalidSign = errors.New("segment: sign not in inventory")

// UnhandledCharError reports the character that defeated every rule and
// the word it appeared in. It unwraps to ErrUnhandledChar.
type UnhandledCharError struct {
	Char rune
	Word string
}

func (e *UnhandledCharError) Error() string {
	return fmt.Sprintf("segment: unhandled character %q in word %q", e.Char, e.Word)
}

func (e *UnhandledCharError) Unwrap() error { return ErrUnhandledChar }

// InvalidSignError reports an internally constructed sign that is not a
// member of the Allowed Sign Set. It unwraps to ErrInvalidSign.
type InvalidSignError struct {
	Sign string
	Word string
}

func (e *InvalidSignError) Error() string {
	return fmt.Sprintf("segment: sign %q not in inventory for word %q", e.Sign, e.Word)
}

func (e *InvalidSignError) Unwrap() error { return ErrInvalidSign }
