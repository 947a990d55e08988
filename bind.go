package surgo

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

var emptyInterface = reflect.TypeOf((*any)(nil)).Elem()

// Bind coerces a raw decoded response value into the typed target to, which
// must be a non-nil pointer. Primitives are coerced leniently (a
// float-decoded number binds to an int field), slices bind element-wise,
// and everything else falls back to a JSON round-trip — which is what folds
// record objects into entity structs and key strings into [Foreign] fields.
func Bind(from, to any) error {
	v := reflect.ValueOf(to)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return errors.New("bind target must be a non-nil pointer")
	}
	return bindValue(from, v)
}

func unwindValue(ptrTo reflect.Value) reflect.Value {
	for ptrTo.Kind() == reflect.Ptr {
		ptrTo = ptrTo.Elem()
	}
	return ptrTo
}

func bindCasted[C any](
	cast func(any) (C, error),
	value any,
	bindTo reflect.Value,
) error {
	c, err := cast(value)
	if err != nil {
		return err
	}
	bindTo.Set(reflect.ValueOf(c))
	return nil
}

func bindValue(from any, to reflect.Value) (err error) {
	toT := to.Type()
	if to.Kind() == reflect.Ptr && toT.Elem() == emptyInterface {
		// reflect.ValueOf(nil) is the zero Value, which Set rejects.
		if from == nil {
			to.Elem().Set(reflect.Zero(emptyInterface))
			return nil
		}
		to.Elem().Set(reflect.ValueOf(from))
		return nil
	} else if toT == emptyInterface && to.CanSet() {
		if from == nil {
			to.Set(reflect.Zero(emptyInterface))
			return nil
		}
		to.Set(reflect.ValueOf(from))
		return nil
	}

	if from != nil {
		// Recurse into slices
		if reflect.TypeOf(from).Kind() == reflect.Slice {
			sliceTo := to
			if sliceTo.Kind() == reflect.Ptr {
				sliceTo = sliceTo.Elem()
			}
			if sliceTo.Kind() != reflect.Slice {
				return errors.New("cannot bind slice to non-slice type")
			}
			fromV := reflect.ValueOf(from)
			n := fromV.Len()
			sliceTo.Set(reflect.MakeSlice(sliceTo.Type(), n, n))
			for i := 0; i < n; i++ {
				toI := sliceTo.Index(i)
				if toI.CanAddr() {
					toI = toI.Addr()
				}
				if err := bindValue(fromV.Index(i).Interface(), toI); err != nil {
					return fmt.Errorf("error binding slice element %d: %w", i, err)
				}
			}
			return nil
		}

		// Primitive coercion.
		value := unwindValue(to)
		var ok bool
		ok, err = func() (bool, error) {
			if !value.IsValid() || !value.CanSet() || !value.CanInterface() {
				return false, nil
			}
			switch value.Interface().(type) {
			case bool:
				return true, bindCasted(cast.ToBoolE, from, value)
			case string:
				return true, bindCasted(cast.ToStringE, from, value)
			case int:
				return true, bindCasted(cast.ToIntE, from, value)
			case int8:
				return true, bindCasted(cast.ToInt8E, from, value)
			case int16:
				return true, bindCasted(cast.ToInt16E, from, value)
			case int32:
				return true, bindCasted(cast.ToInt32E, from, value)
			case int64:
				return true, bindCasted(cast.ToInt64E, from, value)
			case uint:
				return true, bindCasted(cast.ToUintE, from, value)
			case uint8:
				return true, bindCasted(cast.ToUint8E, from, value)
			case uint16:
				return true, bindCasted(cast.ToUint16E, from, value)
			case uint32:
				return true, bindCasted(cast.ToUint32E, from, value)
			case uint64:
				return true, bindCasted(cast.ToUint64E, from, value)
			case float32:
				return true, bindCasted(cast.ToFloat32E, from, value)
			case float64:
				return true, bindCasted(cast.ToFloat64E, from, value)
			case []int:
				return true, bindCasted(cast.ToIntSliceE, from, value)
			case []string:
				return true, bindCasted(cast.ToStringSliceE, from, value)
			case time.Time:
				return true, bindCasted(cast.ToTimeE, from, value)
			case time.Duration:
				return true, bindCasted(cast.ToDurationE, from, value)
			}
			return false, nil
		}()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		// A single record value binds to a slice target as a list of one.
		sliceTo := unwindValue(to)
		if sliceTo.Kind() == reflect.Slice {
			sliceTo.Set(reflect.MakeSlice(sliceTo.Type(), 1, 1))
			return bindValue(from, sliceTo.Index(0).Addr())
		}
	}

	// PERF: round-tripping through JSON is the slow path. Consider imperative
	// coercion for struct targets if this shows up in profiles.
	bytes, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, to.Interface())
}
