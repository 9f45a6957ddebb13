package problem

// Format names the three NumberLink dialects this module supports. The
// zero value is FormatUnknown.
type Format int

const (
	// FormatUnknown is the zero value; never returned by DetectFormat.
	FormatUnknown Format = iota
	// FormatADC2015 is the 2D case (Depth == 1).
	FormatADC2015
	// FormatADC2016 is the multi-layer case with vias; no vertical edges.
	FormatADC2016
	// FormatADC2017 is the multi-layer case without vias; full 3D 6-connectivity.
	FormatADC2017
)

// String renders the canonical lowercase format name used in CLI flags
// and file diagnostics.
func (f Format) String() string {
	switch f {
	case FormatADC2015:
		return "adc2015"
	case FormatADC2016:
		return "adc2016"
	case FormatADC2017:
		return "adc2017"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name (case-insensitive), returning
// FormatUnknown and false if name does not match one of the three known
// formats.
func ParseFormat(name string) (Format, bool) {
	switch lowerASCII(name) {
	case "adc2015":
		return FormatADC2015, true
	case "adc2016":
		return FormatADC2016, true
	case "adc2017":
		return FormatADC2017, true
	default:
		return FormatUnknown, false
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}

// DetectFormat applies the auto-detection rule:
//
//	adc2015 iff Depth == 1
//	adc2016 iff Depth > 1 and viaCount > 0
//	adc2017 iff Depth > 1 and viaCount == 0
func DetectFormat(depth, viaCount int) Format {
	if depth == 1 {
		return FormatADC2015
	}
	if viaCount > 0 {
		return FormatADC2016
	}

	return FormatADC2017
}

// ResolveFormat implements the override-vs-auto-detect contract of spec
// §4.1/§9: if override is FormatUnknown, the auto-detected format is used
// silently. If override disagrees with auto-detection, the auto-detected
// format wins and ok is false (callers should warn, never silently honor
// a contradicting override).
func ResolveFormat(override Format, depth, viaCount int) (resolved Format, ok bool) {
	detected := DetectFormat(depth, viaCount)
	if override == FormatUnknown {
		return detected, true
	}
	if override != detected {
		return detected, false
	}

	return detected, true
}
