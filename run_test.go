package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"

	"github.com/takoeight0821/bitparse/display"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	opts, err := ParseOptions("q", "12,0,4,4")
	if err != nil {
		t.Fatalf("ParseOptions returned error: %v", err)
	}
	if opts.Width != display.Qword {
		t.Errorf("width = %d, want 64", opts.Width)
	}
	if diff := cmp.Diff([]uint{0, 4, 12}, opts.Offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseOptions("z", ""); err == nil {
		t.Error("ParseOptions with width z should fail")
	}
	if _, err := ParseOptions("", "3,x"); err == nil {
		t.Error("ParseOptions with offset x should fail")
	}
}

func TestDetectWidth(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input string
		value uint64
		want  display.Width
	}{
		// A bare hex literal is sized by its digits, even when the
		// value would fit a narrower width.
		{"0x00FF", 0xFF, display.Word},
		{"0xDEADBEEF", 0xDEADBEEF, display.Dword},
		{"0b101", 5, display.Byte},
		{"0b111100001111000011", 0x3C3C3, display.Dword},
		// Anything else is sized by the value.
		{"0x2+0x2", 4, display.Byte},
		{"300", 300, display.Word},
		{"1<<40", 1 << 40, display.Qword},
	}

	for _, testcase := range testcases {
		if got := detectWidth(testcase.input, testcase.value); got != testcase.want {
			t.Errorf("detectWidth(%q, %d) = %d, want %d", testcase.input, testcase.value, got, testcase.want)
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	report, err := Run("(1+2)*3", Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(report, "Unsigned decimal: 9\n") {
		t.Errorf("report starts with %q, want unsigned decimal 9", report)
	}

	if _, err := Run("1/0", Options{}); err == nil {
		t.Error("Run(\"1/0\") should fail")
	}
}

// The full report for a literal with unpacked fields, end to end.
func TestRunGolden(t *testing.T) {
	t.Parallel()

	report, err := Run("0xC5", Options{Offsets: []uint{0, 2, 5}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "run_report", []byte(report))
}
