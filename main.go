package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	const (
		widthUsage  = "force display width: b, w, d, or q"
		unpackUsage = "unpack fields at comma-separated bit offsets"
	)
	var widthFlag string
	flag.StringVar(&widthFlag, "width", "", widthUsage)
	flag.StringVar(&widthFlag, "w", "", widthUsage+" (shorthand)")
	var unpackFlag string
	flag.StringVar(&unpackFlag, "unpack", "", unpackUsage)
	flag.StringVar(&unpackFlag, "u", "", unpackUsage+" (shorthand)")

	flag.Usage = usage
	flag.Parse()

	opts, err := ParseOptions(widthFlag, unpackFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		if err := RunPrompt(opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	report, err := Run(flag.Arg(0), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(report)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bitparse [-w|--width b|w|d|q] [-u|--unpack offset[,offset]] <expression>")
	fmt.Fprintln(os.Stderr, "<expression> combines decimal, 0x (hex), 0o (octal), and 0b (binary) literals")
	fmt.Fprintln(os.Stderr, "with ~ ! * / % + - << >> & ^ | and parentheses.")
	fmt.Fprintln(os.Stderr, "With no expression, bitparse reads them interactively.")
	flag.PrintDefaults()
}
