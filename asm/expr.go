package asm

import (
	"log"
	"math"
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EXPR_MAX_STEPS bounds the work of a single $(...) expression.
const EXPR_MAX_STEPS = 100_000

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		if asm.Verbose {
			log.Printf("$(%v): %v", expr, err)
		}
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok || value > math.MaxInt32 || value < math.MinInt32 {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expandExpressions replaces every $(...) with its decimal value.
func (asm *Assembler) expandExpressions(line string) (expanded string, errs []error) {
	expanded = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, err := asm.parenEval(str[2 : len(str)-1])
		if err != nil {
			errs = append(errs, err)
			return "0"
		}
		return strconv.FormatInt(value, 10)
	})
	return
}
