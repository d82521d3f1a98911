// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command neu is a minimal batch driver for the stack machine: it
// tokenizes and runs each argument (or, with no arguments, stdin) as
// one program against a single Vm, then prints the top of the resulting
// operand stack (the whole stack with -stack). It is not a line editor
// or REPL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/apeyser/neumundtiere/engine"
	"github.com/apeyser/neumundtiere/lexer"
)

var (
	dashf     bool
	dashstack bool
	dashdebug bool
	dashcfg   string
)

func init() {
	flag.BoolVar(&dashf, "f", false, "read arguments as files containing programs")
	flag.BoolVar(&dashstack, "stack", false, "print the full operand stack, not just the top")
	flag.BoolVar(&dashdebug, "debug", false, "log engine dispatch diagnostics to stderr")
	flag.StringVar(&dashcfg, "config", "", "path to a YAML engine.Config document")
}

func loadConfig() *engine.Config {
	if dashcfg == "" {
		return nil
	}
	doc, err := os.ReadFile(dashcfg)
	if err != nil {
		exit(err)
	}
	cfg, err := engine.LoadConfig(doc)
	if err != nil {
		exit(err)
	}
	return cfg
}

func source(arg string) string {
	if !dashf {
		return arg
	}
	buf, err := os.ReadFile(arg)
	if err != nil {
		exit(err)
	}
	return string(buf)
}

func readStdin() string {
	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		exit(err)
	}
	return string(buf)
}

func run(vm *engine.Vm, src string) {
	toks, err := lexer.Tokenize(vm.Names(), src)
	if err != nil {
		exit(err)
	}
	_, ok, err := vm.Exec(toks)
	if err != nil {
		var ee *engine.Error
		if errors.As(err, &ee) {
			exit(ee)
		}
		exit(err)
	}
	if !ok {
		return
	}
	if dashstack {
		strs := make([]string, len(vm.Stack()))
		for i, f := range vm.Stack() {
			strs[i] = f.String()
		}
		fmt.Println(strings.Join(strs, " "))
		return
	}
	stack := vm.Stack()
	fmt.Println(stack[len(stack)-1].String())
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	if dashdebug {
		logger := log.New(os.Stderr, "neu: ", log.Lshortfile)
		engine.Debugf = logger.Printf
	}

	vm := engine.NewVM(loadConfig())

	args := flag.Args()
	if len(args) == 0 {
		run(vm, readStdin())
		return
	}
	for _, arg := range args {
		run(vm, source(arg))
	}
}
