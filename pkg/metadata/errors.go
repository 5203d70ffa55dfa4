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

import "fmt"

// Kind distinguishes the error conditions this package can raise, so
// callers can branch on cause instead of parsing message text.
type Kind uint8

const (
	InvalidPrefix Kind = iota
	InvalidVersion
	ExpectedDecoded
	Codec
	ModuleNotFound
	CallNotFound
	EventNotFound
	StorageNotFound
	StorageTypeError
	MapValueTypeError
)

func (k Kind) String() string {
	switch k {
	case InvalidPrefix:
		return "InvalidPrefix"
	case InvalidVersion:
		return "InvalidVersion"
	case ExpectedDecoded:
		return "ExpectedDecoded"
	case Codec:
		return "Codec"
	case ModuleNotFound:
		return "ModuleNotFound"
	case CallNotFound:
		return "CallNotFound"
	case EventNotFound:
		return "EventNotFound"
	case StorageNotFound:
		return "StorageNotFound"
	case StorageTypeError:
		return "StorageTypeError"
	case MapValueTypeError:
		return "MapValueTypeError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the error type raised at the metadata package boundary. Detail
// carries the offending name, index, or message; Cause carries a wrapped
// underlying error (set for Codec).
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}

	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}

	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidEventArgError reports a failure to parse an EventArg grammar
// string.
type InvalidEventArgError struct {
	Input  string
	Reason string
}

func (e *InvalidEventArgError) Error() string {
	return fmt.Sprintf("invalid event arg %q: %s", e.Input, e.Reason)
}
