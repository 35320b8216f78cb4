package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// Documents keep a typed set of known fields and carry every other client
// field in an Extra map (bson ",inline"). These two functions merge and split
// the JSON form so the extra fields round-trip untouched.

var knownKeysCache sync.Map // reflect.Type -> map[string]struct{} of lower-cased keys

// MarshalWithExtra encodes known (normally an alias of the document type, so
// its own MarshalJSON is not re-entered) and overlays it on extra.
func MarshalWithExtra(known any, extra map[string]any) ([]byte, error) {
	raw, err := sonic.Marshal(known)
	if err != nil || len(extra) == 0 {
		return raw, err
	}

	var fields map[string]any
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(extra)+len(fields))
	for k, v := range extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return sonic.Marshal(merged)
}

// UnmarshalWithExtra decodes data into known (a pointer to an alias struct)
// and returns the fields known does not declare. Returns nil when none are left.
// Keys matching a declared json/bson key or field name in any letter case are
// dropped, since the bson decoder would map a stored "Role" onto the typed role.
func UnmarshalWithExtra(data []byte, known any) (map[string]any, error) {
	if err := sonic.Unmarshal(data, known); err != nil {
		return nil, err
	}

	var all map[string]any
	if err := sonic.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	declared := knownKeys(reflect.TypeOf(known))
	for key := range all {
		if _, ok := declared[strings.ToLower(key)]; ok {
			delete(all, key)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func knownKeys(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := knownKeysCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		keys[strings.ToLower(f.Name)] = struct{}{}
		for _, tag := range []string{f.Tag.Get("json"), f.Tag.Get("bson")} {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" && name != "-" {
				keys[strings.ToLower(name)] = struct{}{}
			}
		}
	}
	knownKeysCache.Store(t, keys)
	return keys
}
