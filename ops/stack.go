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

package ops

import (
	"fmt"

	"github.com/apeyser/neumundtiere/frame"
)

var Clear = frame.StackOp{Name: "clear", N: 0, Fn: func(stack, args []frame.Frame) ([]frame.Frame, int, error) {
	for _, f := range stack {
		frame.ReleaseName(f)
	}
	return nil, len(stack), nil
}}

var Show = frame.StackOp{Name: "show", N: 0, Fn: func(stack, args []frame.Frame) ([]frame.Frame, int, error) {
	fmt.Println("Stack:")
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Printf("  %s\n", stack[i])
	}
	fmt.Println("-----")
	return nil, 0, nil
}}

var Peek = frame.StackOp{Name: "peek", N: 0, Fn: func(stack, args []frame.Frame) ([]frame.Frame, int, error) {
	if len(stack) == 0 {
		fmt.Println("Stack: empty")
	} else {
		fmt.Printf("Top: %s\n", stack[len(stack)-1])
	}
	return nil, 0, nil
}}
