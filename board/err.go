package board

import (
	"github.com/ezrec/decody/translate"
)

var f = translate.From

// ErrBoardUnknown reports a board name with no built-in definition.
type ErrBoardUnknown string

func (err ErrBoardUnknown) Error() string {
	return f("board %v unknown", string(err))
}
