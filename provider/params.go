package provider

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// Params carries caller-supplied constructor parameters keyed by name.
// Keys follow the snake_case names of the underlying SDK options.
type Params map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyAliases returns a copy of params with every generic key present in
// aliases renamed to its provider-specific name. When both names are set the
// generic value wins. params itself is left untouched.
func ApplyAliases(params Params, aliases map[string]string) Params {
	out := params.Clone()
	for from, to := range aliases {
		v, ok := out[from]
		if !ok || from == to {
			continue
		}
		delete(out, from)
		out[to] = v
	}
	return out
}

// Decode copies params into out, a pointer to a struct with mapstructure tags.
// Keys that match no field are reported as an error so a misspelled or
// un-aliased parameter never disappears silently.
func Decode(params Params, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("build params decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(params)); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
