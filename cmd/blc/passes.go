package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/you-not-fish/bl/internal/config"
	"github.com/you-not-fish/bl/internal/transform"
)

// runCount prints a table of call counts for each unit of the program.
func runCount(filename string) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Unit", "Kind", "Primitive", "User", "Total"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, st := range transform.Stats(prog) {
		kind := "instruction"
		if st.Main {
			kind = "program"
		}
		table.Append([]string{
			st.Unit,
			kind,
			strconv.Itoa(st.Primitive),
			strconv.Itoa(st.User),
			strconv.Itoa(st.Total()),
		})
	}
	table.Render()
	return 0
}

func passConfig(pc config.PassesConfig) transform.Config {
	return transform.Config{
		DumpBefore: pc.DumpBefore,
		DumpAfter:  pc.DumpAfter,
		Verify:     pc.Verify,
		Dump:       os.Stderr,
	}
}

// runSimplify runs the configured pass pipeline and prints the result.
func runSimplify(filename string, pc config.PassesConfig, fc config.FormatConfig) int {
	pipeline, err := transform.Pipeline(pc.Pipeline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	if err := transform.Run(prog, pipeline, passConfig(pc)); err != nil {
		fmt.Fprintf(os.Stderr, "pass pipeline failed for %s:\n%v\n", prog.Name, err)
		return 1
	}
	return render(prog, fc)
}

// runRename renames an instruction and prints the result.
func runRename(filename, from, to string, pc config.PassesConfig, fc config.FormatConfig) int {
	prog := parseFile(filename)
	if prog == nil {
		return 1
	}

	pipeline := []transform.Pass{transform.RenamePass(from, to)}
	if err := transform.Run(prog, pipeline, passConfig(pc)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return render(prog, fc)
}
