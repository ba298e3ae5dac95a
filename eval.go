package igor

// Eval evaluates v in env and returns the result.
// Eval takes ownership of v: the cells of an S-expression are replaced
// by their values in place.
func Eval(env *Environment, v Value) Value {
	switch x := v.(type) {
	case Symbol:
		return env.Lookup(string(x))
	case *SExpr:
		return evalSExpr(env, x)
	default: // as a number, an error, a function or a Q-expression
		return v
	}
}

func evalSExpr(env *Environment, x *SExpr) Value {
	for i, c := range x.Cells {
		x.Cells[i] = Eval(env, c)
	}
	for _, c := range x.Cells {
		if e, ok := c.(*Error); ok {
			return e
		}
	}
	switch len(x.Cells) {
	case 0:
		return x
	case 1:
		return x.Cells[0]
	}
	f, ok := x.Cells[0].(*Function)
	if !ok {
		return Errorf("S-Expression starts with incorrect type. Got %s, Expected %s.",
			x.Cells[0].Type(), TypeFunction)
	}
	return f.Call(env, x.Cells[1:])
}

// EvalString reads src and evaluates it in env.
// The error is non-nil only if src cannot be parsed; evaluation errors
// are returned as error values.
func EvalString(env *Environment, src string) (Value, error) {
	v, err := ReadString(src)
	if err != nil {
		return nil, err
	}
	return Eval(env, v), nil
}
