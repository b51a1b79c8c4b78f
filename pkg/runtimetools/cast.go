package runtimetools

import (
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// ErrCast marks every conversion failure.
var ErrCast = errors.New("cannot cast value")

// Cast converts v to T. Supported targets are the basic kinds, time.Duration
// and time.Time; anything else must already be a T.
func Cast[T any](v any) (T, error) {
	var zero T
	out, err := castTo(reflect.TypeOf(zero), v)
	if err != nil {
		return zero, err
	}
	ret, ok := out.(T)
	if !ok {
		return zero, nil
	}
	return ret, nil
}

// CastArgs converts args in order to the given types, the way loosely typed
// input (command line words, config values) is fed to a typed function.
func CastArgs(types []reflect.Type, args []any) ([]any, error) {
	if len(args) > len(types) {
		return nil, errors.Mark(errors.Newf("%d arguments for %d parameters", len(args), len(types)), ErrCast)
	}
	out := make([]any, len(args))
	for i, a := range args {
		v, err := castTo(types[i], a)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// Call1 casts arg to fn's parameter type and calls fn.
func Call1[A, R any](fn func(A) R, arg any) (R, error) {
	var zero R
	a, err := Cast[A](arg)
	if err != nil {
		return zero, err
	}
	return fn(a), nil
}

// Call2 casts both arguments to fn's parameter types and calls fn.
func Call2[A, B, R any](fn func(A, B) R, a, b any) (R, error) {
	var zero R
	x, err := Cast[A](a)
	if err != nil {
		return zero, err
	}
	y, err := Cast[B](b)
	if err != nil {
		return zero, err
	}
	return fn(x, y), nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

func castTo(t reflect.Type, v any) (any, error) {
	if t == nil {
		return v, nil
	}

	var (
		out any
		err error
	)
	switch {
	case t == durationType:
		out, err = cast.ToDurationE(v)
	case t == timeType:
		out, err = cast.ToTimeE(v)
	default:
		switch t.Kind() {
		case reflect.String:
			out, err = cast.ToStringE(v)
		case reflect.Bool:
			out, err = cast.ToBoolE(v)
		case reflect.Int:
			out, err = cast.ToIntE(v)
		case reflect.Int8:
			out, err = cast.ToInt8E(v)
		case reflect.Int16:
			out, err = cast.ToInt16E(v)
		case reflect.Int32:
			out, err = cast.ToInt32E(v)
		case reflect.Int64:
			out, err = cast.ToInt64E(v)
		case reflect.Uint:
			out, err = cast.ToUintE(v)
		case reflect.Uint8:
			out, err = cast.ToUint8E(v)
		case reflect.Uint16:
			out, err = cast.ToUint16E(v)
		case reflect.Uint32:
			out, err = cast.ToUint32E(v)
		case reflect.Uint64:
			out, err = cast.ToUint64E(v)
		case reflect.Float32:
			out, err = cast.ToFloat32E(v)
		case reflect.Float64:
			out, err = cast.ToFloat64E(v)
		default:
			if v != nil && reflect.TypeOf(v).AssignableTo(t) {
				return v, nil
			}
			return nil, errors.Mark(errors.Newf("%T to %s", v, t), ErrCast)
		}
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%T to %s", v, t), ErrCast)
	}

	// Named types such as `type Level int` come back as their underlying kind.
	rv := reflect.ValueOf(out)
	if rv.Type() != t {
		out = rv.Convert(t).Interface()
	}
	return out, nil
}
