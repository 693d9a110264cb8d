package decode

import (
	"github.com/ezrec/decody/translate"
)

var f = translate.From

// ErrExpression reports an address expression that did not evaluate to an
// integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("(%v) is not a valid address expression", string(err))
}
