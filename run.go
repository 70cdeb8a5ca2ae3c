package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"

	"github.com/takoeight0821/bitparse/display"
	"github.com/takoeight0821/bitparse/eval"
)

type Options struct {
	Width   display.Width // 0 means pick from the input
	Offsets []uint
}

// ParseOptions validates the raw flag values. Unpack offsets are
// sorted and deduplicated so the field printer can walk them in order.
func ParseOptions(widthFlag, unpackFlag string) (Options, error) {
	var opts Options
	if widthFlag != "" {
		width, err := display.ParseWidth(widthFlag)
		if err != nil {
			return Options{}, err
		}
		opts.Width = width
	}
	if unpackFlag != "" {
		for _, field := range strings.Split(unpackFlag, ",") {
			offset, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return Options{}, fmt.Errorf("bad unpack offset %q: %w", field, err)
			}
			opts.Offsets = append(opts.Offsets, uint(offset))
		}
		slices.Sort(opts.Offsets)
		opts.Offsets = slices.Compact(opts.Offsets)
	}

	return opts, nil
}

// Run evaluates one expression and renders its full report.
func Run(input string, opts Options) (string, error) {
	value, err := eval.Evaluate(input)
	if err != nil {
		return "", err
	}

	width := opts.Width
	if width == 0 {
		width = detectWidth(input, value)
	}

	var builder strings.Builder
	display.Report(&builder, value, width)
	display.Unpack(&builder, value, width, opts.Offsets)

	return builder.String(), nil
}

// detectWidth picks a display width. A bare hex or binary literal
// carries its width in its digit count; anything else is sized by the
// value alone.
func detectWidth(input string, value uint64) display.Width {
	literal := strings.TrimSpace(input)
	if rest, ok := strings.CutPrefix(literal, "0x"); ok && isBareLiteral(rest) {
		return display.FromHexDigits(len(rest))
	}
	if rest, ok := strings.CutPrefix(literal, "0b"); ok && isBareLiteral(rest) {
		return display.FromBits(len(rest))
	}

	return display.FromValue(value)
}

func isBareLiteral(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f') {
			return false
		}
	}

	return true
}

var history = filepath.Join(xdg.DataHome, "bitparse", ".bitparse_history")

// RunPrompt reads expressions interactively, printing a report per
// line. Evaluation errors are printed and the prompt continues.
func RunPrompt(opts Options) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		report, err := Run(input, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			continue
		}
		fmt.Print(report)
	}
}
