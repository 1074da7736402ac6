package conv

import (
	"fmt"
	"strings"
)

// PaddingMode selects how the zero border around each image is sized.
type PaddingMode int

// Supported padding modes.
const (
	// PadValid adds no border; the output shrinks by kernel size minus one.
	PadValid PaddingMode = iota
	// PadSame adds (k-1)/2 zeros on each side of an axis.
	PadSame
	// PadExplicit uses caller-supplied per-axis border sizes.
	PadExplicit
)

// String returns the mode name.
func (m PaddingMode) String() string {
	switch m {
	case PadValid:
		return "valid"
	case PadSame:
		return "same"
	case PadExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Padding describes the zero border added to the spatial axes of an image batch.
// The zero value is valid padding.
type Padding struct {
	Mode PaddingMode
	H    int // Used only by PadExplicit.
	W    int // Used only by PadExplicit.
}

// Valid returns padding that adds no border.
func Valid() Padding {
	return Padding{Mode: PadValid}
}

// Same returns padding that keeps the spatial size for odd kernels at stride 1.
func Same() Padding {
	return Padding{Mode: PadSame}
}

// Explicit returns padding with h rows above and below and w columns left and right.
func Explicit(h, w int) Padding {
	return Padding{Mode: PadExplicit, H: h, W: w}
}

// ParsePadding converts "valid" or "same" (case-insensitive) into a Padding.
func ParsePadding(s string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "valid":
		return Valid(), nil
	case "same":
		return Same(), nil
	default:
		return Padding{}, fmt.Errorf("%w: unknown padding mode %q", ErrInvalidArgument, s)
	}
}

// String returns "valid", "same" or "(h, w)".
func (p Padding) String() string {
	if p.Mode == PadExplicit {
		return fmt.Sprintf("(%d, %d)", p.H, p.W)
	}
	return p.Mode.String()
}

// Resolve returns the per-side border (ph, pw) for a kh x kw kernel.
//
// Same padding is (k-1)/2 on every stride. With odd kernels this gives an
// output of ceil(in/stride) per axis, which is exactly the input size at stride 1.
// Even kernels lose one row or column at stride 1 because the border is symmetric.
func (p Padding) Resolve(kh, kw int, s Stride) (ph, pw int, err error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	if kh <= 0 || kw <= 0 {
		return 0, 0, fmt.Errorf("%w: kernel %dx%d must be positive", ErrShape, kh, kw)
	}

	switch p.Mode {
	case PadValid:
		return 0, 0, nil
	case PadSame:
		return (kh - 1) / 2, (kw - 1) / 2, nil
	case PadExplicit:
		if p.H < 0 || p.W < 0 {
			return 0, 0, fmt.Errorf("%w: padding %v must be non-negative", ErrInvalidArgument, p)
		}
		return p.H, p.W, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown padding mode %d", ErrInvalidArgument, int(p.Mode))
	}
}
