package igor

// Environment represents the single, flat table of global bindings.
// It is not safe for concurrent use.
type Environment struct {
	vals  map[string]Value
	names []string // in order of first definition
}

// NewEnvironment returns an empty environment.
// Call AddBuiltins to populate it with the builtin functions.
func NewEnvironment() *Environment {
	return &Environment{vals: make(map[string]Value)}
}

// Lookup returns a copy of the value bound to name,
// or an error value if name is unbound.
func (env *Environment) Lookup(name string) Value {
	if v, ok := env.vals[name]; ok {
		return Copy(v)
	}
	return Errorf("Unbound Symbol '%s'", name)
}

// Bind binds a copy of v to name, replacing any previous binding.
func (env *Environment) Bind(name string, v Value) {
	if _, ok := env.vals[name]; !ok {
		env.names = append(env.names, name)
	}
	env.vals[name] = Copy(v)
}

// Names returns the bound names in order of first definition.
func (env *Environment) Names() []string {
	result := make([]string, len(env.names))
	copy(result, env.names)
	return result
}

// Len returns the number of bindings.
func (env *Environment) Len() int {
	return len(env.names)
}

// AddBuiltin binds name to a builtin function.
func (env *Environment) AddBuiltin(name string, fn Builtin) {
	env.Bind(name, &Function{name, fn})
}
