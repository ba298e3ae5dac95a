package igor

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

var builtins = []struct {
	name string
	fn   Builtin
}{
	{"list", builtinList},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"join", builtinJoin},
	{"eval", builtinEval},
	{"def", builtinDef},
	{"+", opBuiltin("+")},
	{"-", opBuiltin("-")},
	{"*", opBuiltin("*")},
	{"/", opBuiltin("/")},
	{"%", opBuiltin("%")},
	{"^", opBuiltin("^")},
	{"min", opBuiltin("min")},
	{"max", opBuiltin("max")},
}

// AddBuiltins binds every builtin function in env.
func (env *Environment) AddBuiltins() {
	for _, b := range builtins {
		env.AddBuiltin(b.name, b.fn)
	}
}

//----------------------------------------------------------------------

func checkCount(name string, args []Value, n int) *Error {
	if len(args) != n {
		return Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), n)
	}
	return nil
}

func checkMinCount(name string, args []Value, n int) *Error {
	if len(args) < n {
		return Errorf("Function '%s' passed too few arguments. Got %d, Expected at least %d.",
			name, len(args), n)
	}
	return nil
}

func checkType(name string, args []Value, i int, t Type) *Error {
	if got := args[i].Type(); got != t {
		return Errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, i, got, t)
	}
	return nil
}

func checkNotEmpty(name string, args []Value, i int) *Error {
	if q, ok := args[i].(*QExpr); ok && len(q.Cells) == 0 {
		return Errorf("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

// firstError returns the first non-nil error of errs.
func firstError(errs ...func() *Error) *Error {
	for _, f := range errs {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

//----------------------------------------------------------------------

// (list a b ...) => {a b ...}
func builtinList(env *Environment, args []Value) Value {
	return &QExpr{args}
}

// (head {a b ...}) => {a}
func builtinHead(env *Environment, args []Value) Value {
	if err := checkQExprArg("head", args); err != nil {
		return err
	}
	q := args[0].(*QExpr)
	q.Cells = q.Cells[:1]
	return q
}

// (tail {a b ...}) => {b ...}
func builtinTail(env *Environment, args []Value) Value {
	if err := checkQExprArg("tail", args); err != nil {
		return err
	}
	q := args[0].(*QExpr)
	q.Cells = q.Cells[1:]
	return q
}

func checkQExprArg(name string, args []Value) *Error {
	return firstError(
		func() *Error { return checkCount(name, args, 1) },
		func() *Error { return checkType(name, args, 0, TypeQExpr) },
		func() *Error { return checkNotEmpty(name, args, 0) },
	)
}

// (join {a ...} {b ...} ...) => {a ... b ...}
func builtinJoin(env *Environment, args []Value) Value {
	if err := checkMinCount("join", args, 1); err != nil {
		return err
	}
	for i := range args {
		if err := checkType("join", args, i, TypeQExpr); err != nil {
			return err
		}
	}
	q := args[0].(*QExpr)
	for _, a := range args[1:] {
		q.Cells = append(q.Cells, a.(*QExpr).Cells...)
	}
	return q
}

// (eval {f a ...}) => (f a ...)
func builtinEval(env *Environment, args []Value) Value {
	if err := firstError(
		func() *Error { return checkCount("eval", args, 1) },
		func() *Error { return checkType("eval", args, 0, TypeQExpr) },
	); err != nil {
		return err
	}
	return Eval(env, &SExpr{args[0].(*QExpr).Cells})
}

// (def {x y ...} a b ...) binds x to a, y to b and so on.
func builtinDef(env *Environment, args []Value) Value {
	if err := firstError(
		func() *Error { return checkMinCount("def", args, 1) },
		func() *Error { return checkType("def", args, 0, TypeQExpr) },
	); err != nil {
		return err
	}
	syms := args[0].(*QExpr).Cells
	for _, s := range syms {
		if s.Type() != TypeSymbol {
			return Errorf("Function 'def' cannot define non-symbol. Got %s, Expected %s.",
				s.Type(), TypeSymbol)
		}
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return Errorf("Function 'def' passed incorrect number of values to symbols. Got %d, Expected %d.",
			len(vals), len(syms))
	}
	for i, s := range syms {
		env.Bind(string(s.(Symbol)), vals[i])
	}
	return &SExpr{}
}

//----------------------------------------------------------------------

// operator combines two numbers. Intermediate results may exceed 64 bits;
// they are narrowed when the fold ends.
type operator func(x, y goarith.Number) (goarith.Number, *Error)

var operators = map[string]operator{
	"+": func(x, y goarith.Number) (goarith.Number, *Error) {
		return x.Add(y), nil
	},
	"-": func(x, y goarith.Number) (goarith.Number, *Error) {
		return x.Sub(y), nil
	},
	"*": func(x, y goarith.Number) (goarith.Number, *Error) {
		return x.Mul(y), nil
	},
	"/": intOperator(func(x, y int64) (int64, *Error) {
		if y == 0 {
			return 0, Errorf("Division By Zero.")
		}
		if x == math.MinInt64 && y == -1 {
			return 0, errOverflow()
		}
		return x / y, nil
	}),
	"%": intOperator(func(x, y int64) (int64, *Error) {
		if y == 0 {
			return 0, Errorf("Division By Zero.")
		}
		return x % y, nil
	}),
	"^": intOperator(power),
	"min": func(x, y goarith.Number) (goarith.Number, *Error) {
		if x.Cmp(y) <= 0 {
			return x, nil
		}
		return y, nil
	},
	"max": func(x, y goarith.Number) (goarith.Number, *Error) {
		if x.Cmp(y) >= 0 {
			return x, nil
		}
		return y, nil
	},
}

func errOverflow() *Error {
	return Errorf("Integer Overflow.")
}

func asArith(n int64) goarith.Number {
	return goarith.AsNumber(big.NewInt(n))
}

// narrow converts x back into an int64 if it fits.
func narrow(x goarith.Number) (int64, bool) {
	n, err := strconv.ParseInt(fmt.Sprint(x), 10, 64)
	return n, err == nil
}

// intOperator lifts an operation on int64 into an operator.
func intOperator(f func(x, y int64) (int64, *Error)) operator {
	return func(x, y goarith.Number) (goarith.Number, *Error) {
		a, ok := narrow(x)
		if !ok {
			return nil, errOverflow()
		}
		b, ok := narrow(y)
		if !ok {
			return nil, errOverflow()
		}
		n, err := f(a, b)
		if err != nil {
			return nil, err
		}
		return asArith(n), nil
	}
}

// power computes x^y by repeated squaring.
func power(x, y int64) (int64, *Error) {
	if y < 0 {
		return 0, Errorf("Negative Exponent.")
	}
	result, base := asArith(1), asArith(x)
	for y > 0 {
		if y&1 == 1 {
			result = result.Mul(base)
			if _, ok := narrow(result); !ok {
				return 0, errOverflow()
			}
		}
		y >>= 1
		if y > 0 {
			base = base.Mul(base)
			if _, ok := narrow(base); !ok {
				return 0, errOverflow()
			}
		}
	}
	n, _ := narrow(result)
	return n, nil
}

func opBuiltin(op string) Builtin {
	return func(env *Environment, args []Value) Value {
		return builtinOp(args, op)
	}
}

// builtinOp folds args from left to right with the operator op.
// A lone argument to "-" is negated.
func builtinOp(args []Value, op string) Value {
	if err := checkMinCount(op, args, 1); err != nil {
		return err
	}
	for i := range args {
		if err := checkType(op, args, i, TypeNumber); err != nil {
			return err
		}
	}
	acc := asArith(int64(args[0].(Number)))
	if op == "-" && len(args) == 1 {
		acc = asArith(0).Sub(acc)
	}
	f := operators[op]
	for _, a := range args[1:] {
		var err *Error
		acc, err = f(acc, asArith(int64(a.(Number))))
		if err != nil {
			return err
		}
	}
	n, ok := narrow(acc)
	if !ok {
		return errOverflow()
	}
	return Number(n)
}
