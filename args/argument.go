// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package args

// Type is the declared target type of an argument.
type Type int

const (
	// TypeString coerces values with cast.ToStringE.
	TypeString Type = iota

	// TypeInt coerces values with cast.ToIntE.
	TypeInt

	// TypeFloat coerces values with cast.ToFloat64E.
	TypeFloat

	// TypeBool coerces values with cast.ToBoolE.
	TypeBool
)

// String returns the type's name for error messages.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Argument is one declaration: a name, a target type, and flags.
type Argument struct {
	name       string
	typ        Type
	required   bool
	def        any
	hasDefault bool
}

// ArgOption configures a single argument declaration.
type ArgOption func(*Argument)

// Required marks the argument as mandatory. A parse where the argument is
// absent from the input fails with a *ValidationError.
//
// Example:
//
//	args.New().Int("age", args.Required())
func Required() ArgOption {
	return func(a *Argument) {
		a.required = true
	}
}

// Default sets the value used when the argument is absent from the input.
// The default is returned as-is, without coercion. Required wins over
// Default: a required argument never falls back.
//
// Example:
//
//	args.New().Int("page", args.Default(1))
func Default(v any) ArgOption {
	return func(a *Argument) {
		a.def = v
		a.hasDefault = true
	}
}
