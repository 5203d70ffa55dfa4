// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package metadata

import "strings"

// EventArgKind distinguishes the three EventArg grammar productions.
type EventArgKind uint8

const (
	EventArgPrimitive EventArgKind = iota
	EventArgVec
	EventArgTuple
)

// EventArg is a parsed event-argument type string. The grammar is
// narrow by design (4.3): it only needs to recognize Vec<...> and tuple
// nesting around leaf identifiers, not resolve those identifiers to
// concrete types.
type EventArg struct {
	Kind  EventArgKind
	Name  string     // valid when Kind == EventArgPrimitive
	Inner *EventArg  // valid when Kind == EventArgVec
	Tuple []EventArg // valid when Kind == EventArgTuple
}

// ParseEventArg parses a single EventArg grammar string:
//
//	EventArg := "Vec<" EventArg ">" | "(" EventArg ("," EventArg)* ")" | Ident
//
// Whitespace inside tuples is stripped before splitting on commas.
func ParseEventArg(input string) (EventArg, error) {
	p := &eventArgParser{input: input}

	arg, err := p.parse()
	if err != nil {
		return EventArg{}, err
	}

	if p.pos != len(p.input) {
		return EventArg{}, &InvalidEventArgError{Input: input, Reason: "unexpected trailing input"}
	}

	return arg, nil
}

// RenderEventArg is the inverse of ParseEventArg, used by the grammar's
// round-trip property test (invariant 6).
func RenderEventArg(a EventArg) string {
	switch a.Kind {
	case EventArgPrimitive:
		return a.Name
	case EventArgVec:
		return "Vec<" + RenderEventArg(*a.Inner) + ">"
	case EventArgTuple:
		parts := make([]string, len(a.Tuple))
		for i, e := range a.Tuple {
			parts[i] = RenderEventArg(e)
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return ""
	}
}

// Primitives flattens an EventArg into its leaf primitive names in
// left-to-right order.
func Primitives(a EventArg) []string {
	switch a.Kind {
	case EventArgPrimitive:
		return []string{a.Name}
	case EventArgVec:
		return Primitives(*a.Inner)
	case EventArgTuple:
		var out []string
		for _, e := range a.Tuple {
			out = append(out, Primitives(e)...)
		}
		return out
	default:
		return nil
	}
}

type eventArgParser struct {
	input string
	pos   int
}

func (p *eventArgParser) parse() (EventArg, error) {
	if p.pos >= len(p.input) {
		return EventArg{}, &InvalidEventArgError{Input: p.input, Reason: "unexpected end of input"}
	}

	switch {
	case p.hasPrefix("Vec<"):
		p.pos += len("Vec<")

		inner, err := p.parse()
		if err != nil {
			return EventArg{}, err
		}

		if !p.hasPrefix(">") {
			return EventArg{}, &InvalidEventArgError{Input: p.input, Reason: "missing closing '>' for Vec"}
		}
		p.pos++

		return EventArg{Kind: EventArgVec, Inner: &inner}, nil

	case p.hasPrefix("("):
		p.pos++

		var elements []EventArg
		for {
			p.skipSpace()

			elem, err := p.parse()
			if err != nil {
				return EventArg{}, err
			}
			elements = append(elements, elem)

			p.skipSpace()

			if p.hasPrefix(",") {
				p.pos++
				continue
			}

			break
		}

		if !p.hasPrefix(")") {
			return EventArg{}, &InvalidEventArgError{Input: p.input, Reason: "missing closing ')' for tuple"}
		}
		p.pos++

		return EventArg{Kind: EventArgTuple, Tuple: elements}, nil

	default:
		start := p.pos
		for p.pos < len(p.input) && !isIdentBoundary(p.input[p.pos]) {
			p.pos++
		}

		if p.pos == start {
			return EventArg{}, &InvalidEventArgError{Input: p.input, Reason: "expected identifier"}
		}

		return EventArg{Kind: EventArgPrimitive, Name: p.input[start:p.pos]}, nil
	}
}

func (p *eventArgParser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

func (p *eventArgParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func isIdentBoundary(b byte) bool {
	return b == '<' || b == '>' || b == '(' || b == ')' || b == ','
}
