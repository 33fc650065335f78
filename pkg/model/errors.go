package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateKey matches every *DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate map key")

	// ErrInvalidParams matches every *InvalidParamsError.
	ErrInvalidParams = errors.New("invalid parameters")
)

// DuplicateKeyError is returned by the AddXEntry methods when the key is
// already present in the map.
type DuplicateKeyError struct {
	Shape  string
	Member string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s.%s: duplicated keys (%s) are provided", e.Shape, e.Member, e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) hold.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// InvalidParamsError lists the required members left unset on a shape.
// Nested members are reported with their dotted path, e.g. location.type.
type InvalidParamsError struct {
	Shape  string
	Fields []string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("%d validation error(s) found in %s: missing required field(s) %s",
		len(e.Fields), e.Shape, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrInvalidParams) hold.
func (e *InvalidParamsError) Is(target error) bool {
	return target == ErrInvalidParams
}
