package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/prefabs"
)

// TengoScript runs a designer-authored tengo behavior as a resumable script.
// The script must define `update(api, state)`; it is called once per
// resumption with the primitive api and a persistent state map, and returns
// the number of frames to wait. A negative return completes the task.
//
//	update := func(api, state) {
//		state.n = (state.n || 0) + 1
//		x := api.owner_pos()[0]
//		api.fire_fan(x, 120, 5, 60, 90, 120, "bullet_small")
//		if state.n >= 8 { return -1 }
//		return 30
//	}
type TengoScript struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

const tengoDispatch = `
__wait := 0
if __phase == "update" {
	__wait = update(__api, __state)
}
`

// NewTengoScript compiles a behavior script. The returned script is
// single-use per task, like every other Script.
func NewTengoScript(name string, src []byte) (*TengoScript, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), []byte(tengoDispatch)...))
	_ = s.Add("__phase", "")
	_ = s.Add("__api", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	return &TengoScript{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// LoadTengoScript compiles an embedded prefab script by path.
func LoadTengoScript(path string) (*TengoScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return NewTengoScript(path, src)
}

// Resume implements Script.
func (t *TengoScript) Resume(ctx *Context) (int, bool, error) {
	if t == nil || t.compiled == nil {
		return 0, true, fmt.Errorf("script: nil tengo script")
	}
	if err := t.compiled.Set("__phase", "update"); err != nil {
		return 0, true, err
	}
	if err := t.compiled.Set("__api", buildTengoAPI(ctx)); err != nil {
		return 0, true, err
	}
	if err := t.compiled.Set("__state", t.state); err != nil {
		return 0, true, err
	}
	if err := t.compiled.Run(); err != nil {
		return 0, true, fmt.Errorf("script: %s: %w", t.name, err)
	}

	wait := t.compiled.Get("__wait").Int()
	if wait < 0 {
		return 0, true, nil
	}
	return wait, false, nil
}

func buildTengoAPI(ctx *Context) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["fire"] = userFunc("fire", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := argFloat(args, 0), argFloat(args, 1)
		speed, angle := argFloat(args, 2), argFloat(args, 3)
		ctx.Fire(x, y, speed, angle, argString(args, 4, prefabs.DefaultArchetype), nil)
		return tengo.UndefinedValue, nil
	})

	values["fire_aimed"] = userFunc("fire_aimed", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := argFloat(args, 0), argFloat(args, 1)
		ctx.FireAimed(x, y, argFloat(args, 2), argString(args, 3, prefabs.DefaultArchetype), nil)
		return tengo.UndefinedValue, nil
	})

	values["fire_ring"] = userFunc("fire_ring", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := argFloat(args, 0), argFloat(args, 1)
		count := argInt(args, 2)
		speed := argFloat(args, 3)
		start := argFloat(args, 4)
		FireRing(ctx, x, y, count, speed, argString(args, 5, prefabs.DefaultArchetype), nil, start)
		return tengo.UndefinedValue, nil
	})

	values["fire_fan"] = userFunc("fire_fan", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := argFloat(args, 0), argFloat(args, 1)
		count := argInt(args, 2)
		spread, base, speed := argFloat(args, 3), argFloat(args, 4), argFloat(args, 5)
		FireFan(ctx, x, y, count, spread, base, speed, argString(args, 6, prefabs.DefaultArchetype), nil)
		return tengo.UndefinedValue, nil
	})

	values["fire_spiral"] = userFunc("fire_spiral", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := argFloat(args, 0), argFloat(args, 1)
		arms, per := argInt(args, 2), argInt(args, 3)
		speed, offset := argFloat(args, 4), argFloat(args, 5)
		FireSpiral(ctx, x, y, arms, per, speed, offset, argString(args, 6, prefabs.DefaultArchetype), nil)
		return tengo.UndefinedValue, nil
	})

	values["spawn_enemy"] = userFunc("spawn_enemy", func(args ...tengo.Object) (tengo.Object, error) {
		kind := argString(args, 0, "")
		x, y := argFloat(args, 1), argFloat(args, 2)
		if _, err := ctx.SpawnEnemy(kind, x, y, nil, 0); err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	})

	values["random"] = userFunc("random", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.Random()}, nil
	})

	values["random_range"] = userFunc("random_range", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.RandomRange(argFloat(args, 0), argFloat(args, 1))}, nil
	})

	values["player_pos"] = userFunc("player_pos", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := ctx.PlayerPos()
		return floatPair(x, y), nil
	})

	values["owner_pos"] = userFunc("owner_pos", func(args ...tengo.Object) (tengo.Object, error) {
		x, y := ctx.OwnerPos()
		return floatPair(x, y), nil
	})

	values["set_pos"] = userFunc("set_pos", func(args ...tengo.Object) (tengo.Object, error) {
		ctx.SetPos(argFloat(args, 0), argFloat(args, 1))
		return tengo.UndefinedValue, nil
	})

	values["despawn"] = userFunc("despawn", func(args ...tengo.Object) (tengo.Object, error) {
		if ctx.Owner.Valid() {
			ecs.DestroyEntity(ctx.World, ctx.Owner)
		}
		return tengo.UndefinedValue, nil
	})

	values["enemies_alive"] = userFunc("enemies_alive", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(ctx.EnemiesAlive())}, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func userFunc(name string, fn tengo.CallableFunc) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: fn}
}

func floatPair(x, y float64) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: x},
		&tengo.Float{Value: y},
	}}
}

func argFloat(args []tengo.Object, i int) float64 {
	if i >= len(args) {
		return 0
	}
	if v, ok := tengo.ToFloat64(args[i]); ok {
		return v
	}
	return 0
}

func argInt(args []tengo.Object, i int) int {
	if i >= len(args) {
		return 0
	}
	if v, ok := tengo.ToInt(args[i]); ok {
		return v
	}
	return 0
}

func argString(args []tengo.Object, i int, fallback string) string {
	if i >= len(args) {
		return fallback
	}
	if v, ok := tengo.ToString(args[i]); ok && v != "" {
		return v
	}
	return fallback
}
