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

package config_test

import (
	"testing"

	"dirpx.dev/wirex/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.StopOnFirstError != config.DefaultStopOnFirstError {
		t.Fatalf("StopOnFirstError = %v, want %v", got.StopOnFirstError, config.DefaultStopOnFirstError)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithMaxDepth(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(3))
	if c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}

	// Negative resets to default.
	c2 := config.NewConfig(config.WithMaxDepth(-1))
	if c2.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want default %d", c2.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestWithMaxUnwrap(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(2))
	if c.MaxUnwrap != 2 {
		t.Fatalf("MaxUnwrap = %d, want 2", c.MaxUnwrap)
	}

	c2 := config.NewConfig(config.WithMaxUnwrap(-5))
	if c2.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c2.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithStopOnFirstError(t *testing.T) {
	c := config.NewConfig(config.WithStopOnFirstError(true))
	if !c.StopOnFirstError {
		t.Fatalf("StopOnFirstError = %v, want true", c.StopOnFirstError)
	}

	c2 := config.NewConfig(config.WithStopOnFirstError(false))
	if c2.StopOnFirstError {
		t.Fatalf("StopOnFirstError = %v, want false", c2.StopOnFirstError)
	}
}

func TestNewConfig_LastOptionWins(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(2), config.WithMaxDepth(5))
	if c.MaxDepth != 5 {
		t.Fatalf("MaxDepth = %d, want 5", c.MaxDepth)
	}
}
