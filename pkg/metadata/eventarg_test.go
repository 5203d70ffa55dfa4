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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventArgVecOfTuple(t *testing.T) {
	arg, err := ParseEventArg("Vec<(AccountId, Balance)>")
	require.NoError(t, err)

	require.Equal(t, EventArgVec, arg.Kind)
	require.Equal(t, EventArgTuple, arg.Inner.Kind)
	require.Len(t, arg.Inner.Tuple, 2)
	assert.Equal(t, "AccountId", arg.Inner.Tuple[0].Name)
	assert.Equal(t, "Balance", arg.Inner.Tuple[1].Name)
}

func TestParseEventArgPlainIdent(t *testing.T) {
	arg, err := ParseEventArg("AccountId")
	require.NoError(t, err)
	assert.Equal(t, EventArgPrimitive, arg.Kind)
	assert.Equal(t, "AccountId", arg.Name)
}

func TestParseEventArgNestedVec(t *testing.T) {
	arg, err := ParseEventArg("Vec<Vec<u8>>")
	require.NoError(t, err)
	assert.Equal(t, EventArgVec, arg.Kind)
	assert.Equal(t, EventArgVec, arg.Inner.Kind)
	assert.Equal(t, "u8", arg.Inner.Inner.Name)
}

func TestParseEventArgMismatchedBrackets(t *testing.T) {
	_, err := ParseEventArg("Vec<AccountId")
	require.Error(t, err)

	var invalid *InvalidEventArgError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseEventArgUnbalancedTuple(t *testing.T) {
	_, err := ParseEventArg("(AccountId, Balance")
	require.Error(t, err)
}

func TestEventArgRoundTrip(t *testing.T) {
	cases := []EventArg{
		{Kind: EventArgPrimitive, Name: "AccountId"},
		{Kind: EventArgVec, Inner: &EventArg{Kind: EventArgPrimitive, Name: "Balance"}},
		{
			Kind: EventArgTuple,
			Tuple: []EventArg{
				{Kind: EventArgPrimitive, Name: "AccountId"},
				{Kind: EventArgVec, Inner: &EventArg{Kind: EventArgPrimitive, Name: "Balance"}},
			},
		},
		{
			Kind: EventArgVec,
			Inner: &EventArg{
				Kind: EventArgTuple,
				Tuple: []EventArg{
					{Kind: EventArgPrimitive, Name: "Hash"},
					{Kind: EventArgPrimitive, Name: "BlockNumber"},
				},
			},
		},
	}

	for _, c := range cases {
		rendered := RenderEventArg(c)

		parsed, err := ParseEventArg(rendered)
		require.NoError(t, err)

		assert.Equal(t, RenderEventArg(c), RenderEventArg(parsed))
	}
}

func TestPrimitivesFlattensLeftToRight(t *testing.T) {
	arg, err := ParseEventArg("(AccountId,Vec<(Balance,Hash)>,BlockNumber)")
	require.NoError(t, err)

	assert.Equal(t, []string{"AccountId", "Balance", "Hash", "BlockNumber"}, Primitives(arg))
}
