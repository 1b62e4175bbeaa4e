package pfb

import (
	"fmt"
	"sort"
)

// Preset designs of deployed channelizer firmware. These are lookup data,
// not derived at runtime; the bug flags reflect what the hardware shipped
// with.
var presets = map[string]Spec{
	"chime": {
		NChan:  2048,
		NTaps:  4,
		Width:  1.0,
		Window: Hamming,
		LPF:    Sinc,
		Bug:    true,
	},
	"guppi": {
		NChan:  2047,
		NTaps:  16,
		Width:  0.91,
		Window: Hanning,
		LPF:    Sinc,
	},
}

// Preset returns the named instrument design. The returned Spec is a
// copy; the registry itself is read-only.
func Preset(name string) (Spec, error) {
	s, ok := presets[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidParameter, name)
	}

	return s.normalized()
}

// PresetNames returns the registry's names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
