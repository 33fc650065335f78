// Package awsmock fornece dublês dos clientes AWS para testes, no formato
// de struct com um campo XFunc por método.
package awsmock

import (
	"errors"
	"fmt"
)

// ErrNotStubbed é retornado quando o teste chama um método sem função.
var ErrNotStubbed = errors.New("awsmock: method not stubbed")

func notStubbed(method string) error {
	return fmt.Errorf("%s: %w", method, ErrNotStubbed)
}
