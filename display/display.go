// Package display renders a 64-bit value the way an engineer reading a
// register dump wants to see it: every base at once, a bit grid, and
// optionally the value split into bit fields.
package display

import (
	"fmt"
	"io"
	"math"
)

// Width is a display width in bits: 8, 16, 32, or 64.
type Width uint

const (
	Byte  Width = 8
	Word  Width = 16
	Dword Width = 32
	Qword Width = 64
)

type UnknownWidthError struct {
	Text string
}

func (e UnknownWidthError) Error() string {
	return fmt.Sprintf("unknown width %q, want b, w, d, or q", e.Text)
}

// ParseWidth maps the CLI width letters to bit widths.
func ParseWidth(text string) (Width, error) {
	switch text {
	case "b":
		return Byte, nil
	case "w":
		return Word, nil
	case "d":
		return Dword, nil
	case "q":
		return Qword, nil
	}

	return 0, UnknownWidthError{Text: text}
}

// Round widens a bit count to the next display width.
func Round(bits int) Width {
	switch {
	case bits <= 8:
		return Byte
	case bits <= 16:
		return Word
	case bits <= 32:
		return Dword
	default:
		return Qword
	}
}

// FromValue picks the smallest width the value fits in.
func FromValue(value uint64) Width {
	switch {
	case value > math.MaxUint32:
		return Qword
	case value > math.MaxUint16:
		return Dword
	case value > math.MaxUint8:
		return Word
	default:
		return Byte
	}
}

// FromHexDigits picks a width from the digit count of a hex literal,
// two digits to the byte.
func FromHexDigits(digits int) Width {
	return Round((digits + 1) / 2 * 8)
}

// FromBits picks a width from the digit count of a binary literal.
func FromBits(digits int) Width {
	return Round((digits + 7) / 8 * 8)
}

// Report writes the representation block and the bit grid.
func Report(w io.Writer, value uint64, width Width) {
	fmt.Fprintf(w, "Unsigned decimal: %d\n", value)
	switch width {
	case Qword:
		fmt.Fprintf(w, "Signed decimal: %d\n", int64(value))
		fmt.Fprintf(w, "Hexadecimal: 0x%016X\n", value)
		fmt.Fprintf(w, "Octal: 0o%024o\n", value)
		fmt.Fprintf(w, "Binary: 0b%064b\n", value)
		fmt.Fprintf(w, "Double-precision float: %v\n", math.Float64frombits(value))
	case Dword:
		fmt.Fprintf(w, "Signed decimal: %d\n", int32(value))
		fmt.Fprintf(w, "Hexadecimal: 0x%08X\n", value)
		fmt.Fprintf(w, "Octal: 0o%012o\n", value)
		fmt.Fprintf(w, "Binary: 0b%032b\n", value)
		fmt.Fprintf(w, "Single-precision float: %v\n", math.Float32frombits(uint32(value)))
	case Word:
		fmt.Fprintf(w, "Signed decimal: %d\n", int16(value))
		fmt.Fprintf(w, "Hexadecimal: 0x%04X\n", value)
		fmt.Fprintf(w, "Octal: 0o%06o\n", value)
		fmt.Fprintf(w, "Binary: 0b%016b\n", value)
	default:
		fmt.Fprintf(w, "Signed decimal: %d\n", int8(value))
		fmt.Fprintf(w, "Hexadecimal: 0x%02X\n", value)
		fmt.Fprintf(w, "Octal: 0o%03o\n", value)
		fmt.Fprintf(w, "Binary: 0b%08b\n", value)
	}
	bitGrid(w, value, width)
}

// bitGrid draws each bit most-significant first, a `|` between bytes,
// and a ruler labelling every byte's bit range.
func bitGrid(w io.Writer, value uint64, width Width) {
	fmt.Fprintln(w, "Bits:")
	for i := int(width) - 1; i >= 0; i-- {
		bit := byte('0')
		if (value>>i)&1 != 0 {
			bit = '1'
		}
		fmt.Fprintf(w, "%c ", bit)
		if i%8 == 0 && i != 0 {
			fmt.Fprint(w, "| ")
		}
	}
	fmt.Fprintln(w)
	for i := int(width) - 1; i >= 0; i -= 8 {
		fmt.Fprintf(w, "    %2d - %-2d       ", i, i-7)
	}
	fmt.Fprintln(w)
}

// Unpack splits the value into fields at the given bit offsets, which
// must be sorted ascending. Each field runs up to the next offset; the
// last runs to the display width. Offsets past the width are ignored.
func Unpack(w io.Writer, value uint64, width Width, offsets []uint) {
	if len(offsets) == 0 {
		return
	}
	fmt.Fprintln(w, "Unpacked fields:")
	for i, offset := range offsets {
		if offset >= uint(width) {
			break
		}
		next := uint(width)
		if i+1 < len(offsets) && offsets[i+1] < next {
			next = offsets[i+1]
		}
		fieldWidth := next - offset
		if fieldWidth == 0 {
			continue
		}
		fieldValue := (value >> offset) & (uint64(1)<<fieldWidth - 1)
		fmt.Fprintf(w, "  Bits %2d to %2d: %d (0x%02X) (0b%0*b)\n",
			offset, next-1, fieldValue, fieldValue, int(fieldWidth), fieldValue)
	}
}
