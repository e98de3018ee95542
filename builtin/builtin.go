/*
File   : coffeebean/builtin/builtin.go
Package: builtin

The Coffee Bean built-in function library. spec.md §4.F names exactly
one built-in, `clock`; SPEC_FULL.md's domain-stack expansion grows that
into a small standard library grounded file-for-file on go-mix/std's
built-ins, narrowed to operate only over Coffee Bean's closed value set
(no maps/sets/structs/tuples, which spec.md's Non-goals exclude).
*/
package builtin

import (
	"fmt"
	"math"
	"strings"
	"time"

	"coffeebean/callable"
	"coffeebean/value"
)

func arityError(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

// All returns every built-in as a {name -> Builtin} map, ready to be
// bound into the global environment by package interp.
func All() map[string]*callable.Builtin {
	builtins := []*callable.Builtin{
		clockBuiltin(),
		lenBuiltin(),
		strBuiltin(),
		intBuiltin(),
		floatBuiltin(),
		typeOfBuiltin(),
		pushBuiltin(),
		popBuiltin(),
		upperBuiltin(),
		lowerBuiltin(),
		sqrtBuiltin(),
		powBuiltin(),
		absBuiltin(),
	}
	out := make(map[string]*callable.Builtin, len(builtins))
	for _, b := range builtins {
		out[b.Name] = b
	}
	return out
}

// clock returns the wall-clock time in seconds since the Unix epoch,
// as a Float. Grounded on language_object.py's CoffeeBeanClock and
// go-mix's `clock`-style zero-arity builtins.
func clockBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "clock",
		NumArgs: 0,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 0 {
				return nil, arityError("clock", 0, len(args))
			}
			return value.Float{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	}
}

// len reports an Array's element count or a String's byte length,
// grounded on go-mix/std/arrays.go and std/strings.go's length helpers.
func lenBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "len",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("len", 1, len(args))
			}
			switch v := args[0].(type) {
			case *value.Array:
				return value.Int{Value: int64(len(v.Elements))}, nil
			case value.String:
				return value.Int{Value: int64(len(v.Value))}, nil
			default:
				return nil, fmt.Errorf("len expects an array or string, got %s", args[0].Type())
			}
		},
	}
}

// str converts any value to its echo-formatted String, grounded on
// std/common.go's tostring builtin.
func strBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "str",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("str", 1, len(args))
			}
			return value.String{Value: args[0].String()}, nil
		},
	}
}

// int converts an Int, Float, or numeric String to an Int, grounded on
// std/common.go's numeric coercion helpers.
func intBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "int",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("int", 1, len(args))
			}
			switch v := args[0].(type) {
			case value.Int:
				return v, nil
			case value.Float:
				return value.Int{Value: int64(v.Value)}, nil
			case value.String:
				var n int64
				if _, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%d", &n); err != nil {
					return nil, fmt.Errorf("cannot convert %q to int", v.Value)
				}
				return value.Int{Value: n}, nil
			default:
				return nil, fmt.Errorf("int expects a number or numeric string, got %s", args[0].Type())
			}
		},
	}
}

// float converts an Int, Float, or numeric String to a Float.
func floatBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "float",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("float", 1, len(args))
			}
			switch v := args[0].(type) {
			case value.Int:
				return value.Float{Value: float64(v.Value)}, nil
			case value.Float:
				return v, nil
			case value.String:
				var f float64
				if _, err := fmt.Sscanf(strings.TrimSpace(v.Value), "%g", &f); err != nil {
					return nil, fmt.Errorf("cannot convert %q to float", v.Value)
				}
				return value.Float{Value: f}, nil
			default:
				return nil, fmt.Errorf("float expects a number or numeric string, got %s", args[0].Type())
			}
		},
	}
}

// type_of reports a value's dynamic kind as a String, grounded on
// std/common.go exposing GoMixObject.GetType as a builtin.
func typeOfBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "type_of",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("type_of", 1, len(args))
			}
			return value.String{Value: string(args[0].Type())}, nil
		},
	}
}

// push appends a value to an array in place, grounded on
// std/arrays.go's pushArray.
func pushBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "push",
		NumArgs: 2,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 2 {
				return nil, arityError("push", 2, len(args))
			}
			arr, ok := args[0].(*value.Array)
			if !ok {
				return nil, fmt.Errorf("push expects an array as its first argument, got %s", args[0].Type())
			}
			arr.Elements = append(arr.Elements, args[1])
			return arr, nil
		},
	}
}

// pop removes and returns an array's last element, grounded on
// std/arrays.go's popArray.
func popBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "pop",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("pop", 1, len(args))
			}
			arr, ok := args[0].(*value.Array)
			if !ok {
				return nil, fmt.Errorf("pop expects an array, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return nil, fmt.Errorf("pop on empty array")
			}
			last := arr.Elements[len(arr.Elements)-1]
			arr.Elements = arr.Elements[:len(arr.Elements)-1]
			return last, nil
		},
	}
}

func upperBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "upper",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			s, ok := args[0].(value.String)
			if len(args) != 1 || !ok {
				return nil, fmt.Errorf("upper expects a single string argument")
			}
			return value.String{Value: strings.ToUpper(s.Value)}, nil
		},
	}
}

func lowerBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "lower",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			s, ok := args[0].(value.String)
			if len(args) != 1 || !ok {
				return nil, fmt.Errorf("lower expects a single string argument")
			}
			return value.String{Value: strings.ToLower(s.Value)}, nil
		},
	}
}

func numericArg(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t.Value), true
	case value.Float:
		return t.Value, true
	default:
		return 0, false
	}
}

// sqrt, pow, and abs delegate to Go's math package, mirroring
// std/math.go's own delegation to the standard library.
func sqrtBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "sqrt",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			n, ok := numericArg(args[0])
			if len(args) != 1 || !ok {
				return nil, fmt.Errorf("sqrt expects a single numeric argument")
			}
			return value.Float{Value: math.Sqrt(n)}, nil
		},
	}
}

func powBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "pow",
		NumArgs: 2,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 2 {
				return nil, arityError("pow", 2, len(args))
			}
			base, ok1 := numericArg(args[0])
			exp, ok2 := numericArg(args[1])
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("pow expects two numeric arguments")
			}
			return value.Float{Value: math.Pow(base, exp)}, nil
		},
	}
}

func absBuiltin() *callable.Builtin {
	return &callable.Builtin{
		Name:    "abs",
		NumArgs: 1,
		Callback: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 {
				return nil, arityError("abs", 1, len(args))
			}
			switch v := args[0].(type) {
			case value.Int:
				if v.Value < 0 {
					return value.Int{Value: -v.Value}, nil
				}
				return v, nil
			case value.Float:
				return value.Float{Value: math.Abs(v.Value)}, nil
			default:
				return nil, fmt.Errorf("abs expects a numeric argument, got %s", args[0].Type())
			}
		},
	}
}
