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

package lexer

import (
	"errors"
	"testing"

	"github.com/apeyser/neumundtiere/intern"
)

func strs(t *testing.T, src string) []string {
	t.Helper()
	toks, err := Tokenize(intern.New(), src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.String()
	}
	return out
}

func wantTokens(t *testing.T, src string, want []string) {
	t.Helper()
	got := strs(t, src)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %q, want %q", src, i, got[i], want[i])
		}
	}
}

func TestScalarLiterals(t *testing.T) {
	wantTokens(t, "42", []string{"42"})
	wantTokens(t, "-7l", []string{"-7"})
	wantTokens(t, "7u", []string{"7"})
	wantTokens(t, "3.5", []string{"3.5"})
	wantTokens(t, "3.5d", []string{"3.5"})
	wantTokens(t, "2e3", []string{"2000"})
}

func TestArrayLiterals(t *testing.T) {
	wantTokens(t, "<d 1 2.5 * >", []string{"1 2.5 *"})
	wantTokens(t, "<l 1 -2 3 >", []string{"1 -2 3"})
	wantTokens(t, "<u 1 2 3 >", []string{"1 2 3"})
}

func TestNamesAndStrings(t *testing.T) {
	wantTokens(t, "/foo", []string{"/(foo)"})
	wantTokens(t, "foo", []string{"~/(foo)"})
	wantTokens(t, "(hi \\(there)", []string{"(hi (there)"})
}

func TestMarksAndBrackets(t *testing.T) {
	wantTokens(t, "[", []string{"["})
	wantTokens(t, "{", []string{"{"})
	wantTokens(t, "]", []string{"mklist"})
	wantTokens(t, "}", []string{"mkproc"})
}

func TestComments(t *testing.T) {
	wantTokens(t, "1 |a comment\n2", []string{"1", "2"})
}

func TestAliasOperatorsLexAsBareNames(t *testing.T) {
	wantTokens(t, "+ - add", []string{"~/(+)", "~/(-)", "~/(add)"})
}

func TestIllegalSymbol(t *testing.T) {
	_, err := Tokenize(intern.New(), "(unterminated")
	var ill *IllegalSymError
	if !errors.As(err, &ill) {
		t.Fatalf("got %v, want *IllegalSymError", err)
	}
}

func TestParseErrorOnOverflow(t *testing.T) {
	_, err := Tokenize(intern.New(), "99999999999999999999")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *ParseError", err)
	}
}
