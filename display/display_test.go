package display_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/takoeight0821/bitparse/display"
)

func TestReportGolden(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name  string
		value uint64
		width display.Width
	}{
		{"report_byte", 0xC0, display.Byte},
		{"report_word", 0xBEEF, display.Word},
		{"report_dword", 0x3F800000, display.Dword},
		{"report_qword", 0x3FF0000000000000, display.Qword},
	}

	for _, testcase := range testcases {
		var builder strings.Builder
		display.Report(&builder, testcase.value, testcase.width)

		g := goldie.New(t)
		g.Assert(t, testcase.name, []byte(builder.String()))
	}
}

func TestUnpackGolden(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name    string
		value   uint64
		width   display.Width
		offsets []uint
	}{
		{"unpack_byte", 0xC5, display.Byte, []uint{0, 2, 5}},
		{"unpack_word", 0xBEEF, display.Word, []uint{4, 12, 99}},
	}

	for _, testcase := range testcases {
		var builder strings.Builder
		display.Unpack(&builder, testcase.value, testcase.width, testcase.offsets)

		g := goldie.New(t)
		g.Assert(t, testcase.name, []byte(builder.String()))
	}
}

func TestUnpackEmpty(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	display.Unpack(&builder, 0xFF, display.Byte, nil)
	if builder.Len() != 0 {
		t.Errorf("Unpack with no offsets wrote %q, want nothing", builder.String())
	}
}

func TestParseWidth(t *testing.T) {
	t.Parallel()

	widths := map[string]display.Width{"b": 8, "w": 16, "d": 32, "q": 64}
	for text, want := range widths {
		got, err := display.ParseWidth(text)
		if err != nil {
			t.Errorf("ParseWidth(%q) returned error: %v", text, err)
		}
		if got != want {
			t.Errorf("ParseWidth(%q) = %d, want %d", text, got, want)
		}
	}

	if _, err := display.ParseWidth("x"); err == nil {
		t.Error("ParseWidth(\"x\") should fail")
	}
}

func TestWidthSelection(t *testing.T) {
	t.Parallel()

	fromValue := []struct {
		value uint64
		want  display.Width
	}{
		{0, display.Byte},
		{0xFF, display.Byte},
		{0x100, display.Word},
		{0xFFFF, display.Word},
		{0x10000, display.Dword},
		{0xFFFFFFFF, display.Dword},
		{0x100000000, display.Qword},
	}
	for _, testcase := range fromValue {
		if got := display.FromValue(testcase.value); got != testcase.want {
			t.Errorf("FromValue(%#x) = %d, want %d", testcase.value, got, testcase.want)
		}
	}

	if got := display.FromHexDigits(2); got != display.Byte {
		t.Errorf("FromHexDigits(2) = %d, want 8", got)
	}
	if got := display.FromHexDigits(3); got != display.Word {
		t.Errorf("FromHexDigits(3) = %d, want 16", got)
	}
	if got := display.FromHexDigits(9); got != display.Qword {
		t.Errorf("FromHexDigits(9) = %d, want 64", got)
	}
	if got := display.FromBits(8); got != display.Byte {
		t.Errorf("FromBits(8) = %d, want 8", got)
	}
	if got := display.FromBits(9); got != display.Word {
		t.Errorf("FromBits(9) = %d, want 16", got)
	}
	if got := display.FromBits(33); got != display.Qword {
		t.Errorf("FromBits(33) = %d, want 64", got)
	}
}
