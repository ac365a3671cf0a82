package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/lixenwraith/edgecam/vmath"
)

var (
	vec2Type = reflect.TypeOf(vmath.Vec2F{})
	vec3Type = reflect.TypeOf(vmath.Vec3F{})
)

// VectorHookFunc decodes [x, y, z] lists and "x,y,z" strings into vmath vectors
// Maps pass through and decode by field name
func VectorHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		var n int
		switch to {
		case vec2Type:
			n = 2
		case vec3Type:
			n = 3
		default:
			return data, nil
		}

		if from.Kind() == reflect.Map || from == to {
			return data, nil
		}

		vals, err := parseFloats(data, n)
		if err != nil {
			return nil, err
		}
		if n == 2 {
			return vmath.Vec2F{X: vals[0], Y: vals[1]}, nil
		}
		return vmath.Vec3F{X: vals[0], Y: vals[1], Z: vals[2]}, nil
	}
}

func parseFloats(data any, n int) ([]float64, error) {
	var parts []any
	switch d := data.(type) {
	case string:
		for _, s := range strings.Split(d, ",") {
			parts = append(parts, strings.TrimSpace(s))
		}
	default:
		rv := reflect.ValueOf(data)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("cannot decode %T as %d-vector", data, n)
		}
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, rv.Index(i).Interface())
		}
	}

	if len(parts) != n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(parts))
	}

	out := make([]float64, n)
	for i, p := range parts {
		f, err := cast.ToFloat64E(p)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
