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

package engine

import (
	"errors"
	"testing"

	"github.com/apeyser/neumundtiere/lexer"
)

func run(t *testing.T, src string) *Vm {
	t.Helper()
	vm := NewVM(nil)
	toks, err := lexer.Tokenize(vm.names, src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	if _, _, err := vm.Exec(toks); err != nil {
		t.Fatalf("Exec(%q): %v", src, err)
	}
	return vm
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"3 1 add neg 2 sub neg", "6"},
		{"1 2 add 4 sub", "-1"},
		{"3 dup add neg 2 sub neg", "8"},
		{"1 dup add 4 pop dup sub", "0"},
		{"{ 1 2 add } exec 10 mul", "30"},
	}
	for _, c := range cases {
		vm := run(t, c.src)
		top := vm.top()
		if top == nil {
			t.Fatalf("%q: empty stack", c.src)
		}
		if got := top.String(); got != c.want {
			t.Errorf("%q: top = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestListGetExchLength(t *testing.T) {
	vm := run(t, "[ 1 2 3 ] dup 1 get exch length")
	stack := vm.Stack()
	if len(stack) != 2 {
		t.Fatalf("stack = %v, want 2 frames", stack)
	}
	if got := stack[1].String(); got != "3" {
		t.Errorf("top = %q, want 3", got)
	}
	if got := stack[0].String(); got != "2" {
		t.Errorf("below top = %q, want 2", got)
	}
}

func TestDivByZeroIsNaN(t *testing.T) {
	vm := run(t, "1 0 div")
	if got := vm.top().String(); got != "*" {
		t.Errorf("top = %q, want NaN (*)", got)
	}
}

func TestQuitUnwindsCleanly(t *testing.T) {
	vm := NewVM(nil)
	toks, err := lexer.Tokenize(vm.names, "1 2 quit 3")
	if err != nil {
		t.Fatal(err)
	}
	top, ok, err := vm.Exec(toks)
	if err != nil {
		t.Fatalf("Exec returned error on quit: %v", err)
	}
	if !ok || top.String() != "2" {
		t.Fatalf("top = %v, ok = %v, want 2/true", top, ok)
	}
}

func TestMissingNameIsMissingKey(t *testing.T) {
	vm := NewVM(nil)
	toks, err := lexer.Tokenize(vm.names, "nosuchname")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = vm.Exec(toks)
	var ee *Error
	if !errors.As(err, &ee) || ee.Kind != MissingKey {
		t.Fatalf("got %v, want MissingKey", err)
	}
}

func TestStackUnderflow(t *testing.T) {
	vm := NewVM(nil)
	toks, err := lexer.Tokenize(vm.names, "add")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = vm.Exec(toks)
	var ee *Error
	if !errors.As(err, &ee) || ee.Kind != StackUnderflow {
		t.Fatalf("got %v, want StackUnderflow", err)
	}
}

func TestDroppedSaveboxReported(t *testing.T) {
	vm := NewVM(nil)
	toks, err := lexer.Tokenize(vm.names, "[ 1 2 ] ")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := vm.Exec(toks); err != nil {
		t.Fatal(err)
	}
	vm.box.Release()

	toks2, err := lexer.Tokenize(vm.names, "0 get")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = vm.Exec(toks2)
	var ee *Error
	if !errors.As(err, &ee) || ee.Kind != Dropped {
		t.Fatalf("got %v, want Dropped", err)
	}
}

func TestProcedureLiteralLawMatchesDirectExecution(t *testing.T) {
	direct := run(t, "3 4 add")
	viaProc := run(t, "{ 3 4 add } exec")
	if direct.top().String() != viaProc.top().String() {
		t.Fatalf("proc execution diverged: direct=%s, proc=%s", direct.top(), viaProc.top())
	}
}

func TestNestedProcedureDepthReturnsToZero(t *testing.T) {
	// The inner "{ 1 2 add }" needs no exec of its own: once it is
	// unrolled as an element of the outer procedure's body, an
	// active list runs the moment it is encountered.
	vm := run(t, "{ { 1 2 add } 5 mul } exec")
	if vm.procDepth != 0 {
		t.Errorf("procDepth = %d, want 0 after well-formed input", vm.procDepth)
	}
	if got := vm.top().String(); got != "15" {
		t.Errorf("top = %q, want 15", got)
	}
}

func TestConfigMaxProcDepth(t *testing.T) {
	vm := NewVM(&Config{MaxProcDepth: 1})
	toks, err := lexer.Tokenize(vm.names, "{ { 1 } exec }")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = vm.Exec(toks)
	var ee *Error
	if !errors.As(err, &ee) || ee.Kind != Unknown {
		t.Fatalf("got %v, want Unknown (depth limit)", err)
	}
}
