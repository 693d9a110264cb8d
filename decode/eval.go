package decode

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Units are the predefined symbols for address expressions.
var Units = map[string]uint32{
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
}

// Eval evaluates a Starlark expression to an address. Every symbol is bound
// as an integer before evaluation.
func Eval(expr string, symbols map[string]uint32) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range symbols {
		pred[key] = starlark.MakeInt(int(val))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}
