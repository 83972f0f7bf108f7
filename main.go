package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	const (
		inputUsage = "input tree file path"
		rulesUsage = "rule file path"
	)
	var inputPath string
	var rulesPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&rulesPath, "rules", "", rulesUsage)
	flag.StringVar(&rulesPath, "r", "", rulesUsage+" (shorthand)")

	flag.Parse()

	var err error
	switch {
	case flag.NArg() > 0:
		paths := flag.Args()
		if inputPath != "" {
			paths = append([]string{inputPath}, paths...)
		}
		err = RunFiles(paths, rulesPath)
	case inputPath != "":
		err = RunFile(inputPath, rulesPath)
	default:
		err = RunPrompt(rulesPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
