/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflector_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/wirex/reflector"
)

type base struct {
	Shared string
	hidden int
}

type mid struct {
	base
	MidOnly string
}

type top struct {
	mid
	Own string
	// Shadows base.Shared at the outer level.
	Shared string
}

type withNilEmbed struct {
	*base
	Own string
}

type plain struct {
	Exported   string
	unexported *base
}

type loop struct {
	*loop
	N int
}

func TestNew_ConstructsPointer(t *testing.T) {
	r := reflector.New()

	v, err := r.New(reflect.TypeOf(base{}))
	if err != nil {
		t.Fatalf("New(base): unexpected error: %v", err)
	}
	if _, ok := v.(*base); !ok {
		t.Fatalf("New(base) = %T, want *base", v)
	}

	// Pointer types unwrap one level: New(*base) is also a *base.
	v2, err := r.New(reflect.TypeOf(&base{}))
	if err != nil {
		t.Fatalf("New(*base): unexpected error: %v", err)
	}
	if _, ok := v2.(*base); !ok {
		t.Fatalf("New(*base) = %T, want *base", v2)
	}
}

func TestNew_NotConstructible(t *testing.T) {
	r := reflector.New()

	if _, err := r.New(nil); !errors.Is(err, reflector.ErrNilType) {
		t.Fatalf("New(nil): want ErrNilType, got %v", err)
	}

	type iface interface{ M() }
	cases := []reflect.Type{
		reflect.TypeOf((*iface)(nil)).Elem(),
		reflect.TypeOf(make(chan int)),
		reflect.TypeOf(func() {}),
	}
	for _, tt := range cases {
		if _, err := r.New(tt); !errors.Is(err, reflector.ErrNotConstructible) {
			t.Fatalf("New(%s): want ErrNotConstructible, got %v", tt, err)
		}
	}
}

func TestLevels_TargetValidation(t *testing.T) {
	r := reflector.New()

	if _, err := r.Levels(nil, 8); !errors.Is(err, reflector.ErrNotPointer) {
		t.Fatalf("Levels(nil): want ErrNotPointer, got %v", err)
	}
	if _, err := r.Levels(base{}, 8); !errors.Is(err, reflector.ErrNotPointer) {
		t.Fatalf("Levels(value): want ErrNotPointer, got %v", err)
	}
	var nilPtr *base
	if _, err := r.Levels(nilPtr, 8); !errors.Is(err, reflector.ErrNotPointer) {
		t.Fatalf("Levels(nil ptr): want ErrNotPointer, got %v", err)
	}
	s := "x"
	if _, err := r.Levels(&s, 8); !errors.Is(err, reflector.ErrNotStruct) {
		t.Fatalf("Levels(*string): want ErrNotStruct, got %v", err)
	}
}

func TestLevels_FlattensEmbeddingChain(t *testing.T) {
	r := reflector.New()

	levels, err := r.Levels(&top{}, 8)
	if err != nil {
		t.Fatalf("Levels(&top{}): unexpected error: %v", err)
	}

	want := []reflect.Type{
		reflect.TypeOf(top{}),
		reflect.TypeOf(mid{}),
		reflect.TypeOf(base{}),
	}
	if len(levels) != len(want) {
		t.Fatalf("Levels(&top{}): got %d levels, want %d", len(levels), len(want))
	}
	for i, lvl := range levels {
		if lvl.Type() != want[i] {
			t.Fatalf("level %d = %v, want %v", i, lvl.Type(), want[i])
		}
		if !lvl.CanAddr() {
			t.Fatalf("level %d (%v) is not addressable", i, lvl.Type())
		}
	}
}

func TestLevels_NilEmbeddedPointerSkipped(t *testing.T) {
	r := reflector.New()

	levels, err := r.Levels(&withNilEmbed{}, 8)
	if err != nil {
		t.Fatalf("Levels: unexpected error: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("nil embedded pointer: got %d levels, want 1", len(levels))
	}

	// A populated embedded pointer contributes its level.
	levels2, err := r.Levels(&withNilEmbed{base: &base{}}, 8)
	if err != nil {
		t.Fatalf("Levels: unexpected error: %v", err)
	}
	if len(levels2) != 2 {
		t.Fatalf("non-nil embedded pointer: got %d levels, want 2", len(levels2))
	}
}

func TestLevels_MaxDepthBoundsSelfReference(t *testing.T) {
	r := reflector.New()

	l := &loop{}
	l.loop = l
	levels, err := r.Levels(l, 3)
	if err != nil {
		t.Fatalf("Levels(self-referential): unexpected error: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("MaxDepth=3: got %d levels, want 3", len(levels))
	}
}

func TestFields_ExcludesEmbeddedLinks(t *testing.T) {
	r := reflector.New()

	fields := r.Fields(reflect.TypeOf(top{}))
	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	want := []string{"Own", "Shared"}
	if len(names) != len(want) {
		t.Fatalf("Fields(top) = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Fields(top) = %v, want %v", names, want)
		}
	}

	if got := r.Fields(reflect.TypeOf("")); got != nil {
		t.Fatalf("Fields(string) = %v, want nil", got)
	}
	if got := r.Fields(nil); got != nil {
		t.Fatalf("Fields(nil) = %v, want nil", got)
	}
}

func TestIsZero(t *testing.T) {
	r := reflector.New()

	p := &plain{Exported: "set"}
	levels, err := r.Levels(p, 8)
	if err != nil {
		t.Fatalf("Levels: unexpected error: %v", err)
	}
	owner := levels[0]
	fields := r.Fields(owner.Type())

	if r.IsZero(owner, fields[0]) {
		t.Fatalf("IsZero(Exported) = true, want false")
	}
	// Unexported fields are readable for the zero check.
	if !r.IsZero(owner, fields[1]) {
		t.Fatalf("IsZero(unexported) = false, want true")
	}
}

func TestAssign_ExportedAndUnexported(t *testing.T) {
	r := reflector.New()

	p := &plain{}
	levels, err := r.Levels(p, 8)
	if err != nil {
		t.Fatalf("Levels: unexpected error: %v", err)
	}
	owner := levels[0]
	fields := r.Fields(owner.Type())

	if err := r.Assign(owner, fields[0], "hello"); err != nil {
		t.Fatalf("Assign(Exported): unexpected error: %v", err)
	}
	if p.Exported != "hello" {
		t.Fatalf("Exported = %q, want %q", p.Exported, "hello")
	}

	// Visibility bypass on the unexported field.
	b := &base{Shared: "b"}
	if err := r.Assign(owner, fields[1], b); err != nil {
		t.Fatalf("Assign(unexported): unexpected error: %v", err)
	}
	if p.unexported != b {
		t.Fatalf("unexported = %p, want %p", p.unexported, b)
	}
}

func TestAssign_Incompatible(t *testing.T) {
	r := reflector.New()

	p := &plain{}
	levels, _ := r.Levels(p, 8)
	owner := levels[0]
	fields := r.Fields(owner.Type())

	// int into a string field.
	err := r.Assign(owner, fields[0], 42)
	if !errors.Is(err, reflector.ErrAssignment) {
		t.Fatalf("Assign(int into string): want ErrAssignment, got %v", err)
	}

	// nil instance.
	err = r.Assign(owner, fields[0], nil)
	if !errors.Is(err, reflector.ErrAssignment) {
		t.Fatalf("Assign(nil): want ErrAssignment, got %v", err)
	}
}
