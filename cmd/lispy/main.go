// Command lispy is the Lispy REPL and script runner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/lispy-repl/lispy"
	"github.com/lispy-repl/lispy/builtins"
	"github.com/lispy-repl/lispy/eval"
	"github.com/lispy-repl/lispy/reader"
	"github.com/lispy-repl/lispy/stdlib"
)

const version = "0.0.1"

func main() {
	showVersion := flag.Bool("v", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: lispy [-v] [script ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("Lispy Version %s\n", version)
		return
	}

	env := lispy.NewRootEnv()
	builtins.RegisterAll(env)
	if err := stdlib.Load(env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		runScripts(env, args)
		return
	}
	runREPL(env)
}

func runScripts(env *lispy.Env, paths []string) {
	for _, path := range paths {
		result := builtins.Load(env, lispy.SExpr{lispy.MakeString(path)})
		if lispy.IsError(result) {
			fmt.Println(result.String())
		}
	}
}

func runREPL(env *lispy.Env) {
	fmt.Printf("Lispy Version %s\n", version)
	fmt.Print("Press Ctrl+c to Exit\n\n")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("lispy> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}
		line.AppendHistory(input)

		forms, err := reader.NewFromString(input).ReadAll()
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		for _, form := range forms {
			result := eval.Eval(env, form)
			fmt.Println(result.String())
		}
	}
}
