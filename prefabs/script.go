package prefabs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	lua "github.com/yuin/gopher-lua"
)

// scriptTimeout bounds how long a configuration script may run.
const scriptTimeout = time.Second

// runTengo executes a Tengo script and returns its global variables.
func runTengo(src []byte) (map[string]any, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, v := range compiled.GetAll() {
		val, ok, err := fromTengo(v.Object(), make(map[tengo.Object]bool))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.Name(), err)
		}
		if ok {
			out[v.Name()] = val
		}
	}
	return out, nil
}

// errCyclic is returned when a script value contains itself.
var errCyclic = errors.New("cyclic value")

// fromTengo converts a Tengo object to plain Go values. path holds the
// containers currently being walked so self references are rejected.
func fromTengo(o tengo.Object, path map[tengo.Object]bool) (any, bool, error) {
	switch to := o.(type) {
	case *tengo.Int:
		return to.Value, true, nil
	case *tengo.Float:
		return to.Value, true, nil
	case *tengo.String:
		return to.Value, true, nil
	case *tengo.Char:
		return string(to.Value), true, nil
	case *tengo.Bool:
		return !to.IsFalsy(), true, nil
	case *tengo.Map:
		return tengoMap(o, to.Value, path)
	case *tengo.ImmutableMap:
		return tengoMap(o, to.Value, path)
	case *tengo.Array:
		return tengoList(o, to.Value, path)
	case *tengo.ImmutableArray:
		return tengoList(o, to.Value, path)
	default:
		return nil, false, nil
	}
}

func tengoMap(o tengo.Object, items map[string]tengo.Object, path map[tengo.Object]bool) (any, bool, error) {
	if path[o] {
		return nil, false, errCyclic
	}
	path[o] = true
	defer delete(path, o)

	m := make(map[string]any, len(items))
	for k, item := range items {
		val, ok, err := fromTengo(item, path)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", k, err)
		}
		if ok {
			m[k] = val
		}
	}
	return m, true, nil
}

func tengoList(o tengo.Object, items []tengo.Object, path map[tengo.Object]bool) (any, bool, error) {
	if path[o] {
		return nil, false, errCyclic
	}
	path[o] = true
	defer delete(path, o)

	list := make([]any, 0, len(items))
	for i, item := range items {
		val, ok, err := fromTengo(item, path)
		if err != nil {
			return nil, false, fmt.Errorf("[%d]: %w", i, err)
		}
		if ok {
			list = append(list, val)
		}
	}
	return list, true, nil
}

// runLua executes a Lua chunk and returns the globals it defined. Functions
// and the standard library tables are skipped.
func runLua(name string, src []byte) (map[string]any, error) {
	L := lua.NewState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	builtin := make(map[string]struct{})
	L.G.Global.ForEach(func(k, _ lua.LValue) {
		builtin[k.String()] = struct{}{}
	})

	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		return nil, err
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, err
	}

	out := make(map[string]any)
	var convErr error
	L.G.Global.ForEach(func(k, v lua.LValue) {
		key := k.String()
		if _, ok := builtin[key]; ok {
			return
		}
		val, ok, err := fromLua(v, make(map[*lua.LTable]bool))
		if err != nil {
			if convErr == nil {
				convErr = fmt.Errorf("%s: %w", key, err)
			}
			return
		}
		if !ok {
			return
		}
		if _, isStr := k.(lua.LString); !isStr {
			if convErr == nil {
				convErr = fmt.Errorf("non-string global key %v", k)
			}
			return
		}
		out[key] = val
	})
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

// fromLua converts a Lua value to plain Go values. path holds the tables
// currently being walked so self references are rejected.
func fromLua(v lua.LValue, path map[*lua.LTable]bool) (any, bool, error) {
	switch lv := v.(type) {
	case lua.LNumber:
		return float64(lv), true, nil
	case lua.LString:
		return string(lv), true, nil
	case lua.LBool:
		return bool(lv), true, nil
	case *lua.LTable:
		if path[lv] {
			return nil, false, errCyclic
		}
		path[lv] = true
		defer delete(path, lv)

		if n := lv.MaxN(); n > 0 {
			list := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				item, ok, err := fromLua(lv.RawGetInt(i), path)
				if err != nil {
					return nil, false, fmt.Errorf("[%d]: %w", i, err)
				}
				if ok {
					list = append(list, item)
				}
			}
			return list, true, nil
		}
		m := make(map[string]any)
		var walkErr error
		lv.ForEach(func(k, item lua.LValue) {
			if walkErr != nil {
				return
			}
			val, ok, err := fromLua(item, path)
			if err != nil {
				walkErr = fmt.Errorf("%s: %w", k.String(), err)
				return
			}
			if ok {
				m[k.String()] = val
			}
		})
		if walkErr != nil {
			return nil, false, walkErr
		}
		return m, true, nil
	default:
		return nil, false, nil
	}
}
