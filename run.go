package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/defuture-io/defuture/driver"
	"github.com/defuture-io/defuture/syntax"
	"github.com/defuture-io/defuture/utils"
	"github.com/peterh/liner"
)

// newRunner builds a pass runner from the rule file. An empty path
// yields a runner with no passes, which prints trees back unchanged.
func newRunner(rulesPath string) (*driver.PassRunner, error) {
	runner := driver.NewPassRunner()
	if rulesPath == "" {
		return runner, nil
	}

	source, err := utils.ReadFile(rulesPath)
	if err != nil {
		return nil, err
	}
	config, err := driver.LoadConfig(source)
	if err != nil {
		return nil, err
	}
	for _, pass := range config.Passes() {
		runner.AddPass(pass)
	}

	return runner, nil
}

func printNodes(nodes []syntax.Node) {
	for _, node := range nodes {
		fmt.Println(node)
	}
}

func RunFile(path, rulesPath string) error {
	runner, err := newRunner(rulesPath)
	if err != nil {
		return err
	}

	source, err := utils.ReadFile(path)
	if err != nil {
		return err
	}

	nodes, err := runner.RunSource(string(source))
	if err != nil {
		return err
	}
	printNodes(nodes)

	return nil
}

func RunFiles(paths []string, rulesPath string) error {
	runner, err := newRunner(rulesPath)
	if err != nil {
		return err
	}

	results, err := runner.RunFiles(paths)
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Printf("; %s\n", result.Path)
		printNodes(result.Nodes)
	}

	return nil
}

var history = filepath.Join(xdg.DataHome, "defuture", ".defuture_history")

func RunPrompt(rulesPath string) error {
	runner, err := newRunner(rulesPath)
	if err != nil {
		return err
	}

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
		nodes, err := runner.RunSource(input)
		if err != nil {
			if errs, ok := err.(interface{ Unwrap() []error }); ok {
				for _, err := range errs.Unwrap() {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

			continue
		}
		printNodes(nodes)
	}
}
