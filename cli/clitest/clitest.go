// © 2026 UIED technology team. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package clitest provides a harness for table-driven testing of
// [cli.App] implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.fsuied.com/annotate/cli"
)

// Case describes a single test case for a [cli.App].
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the app.
	Args []string
	// Stdin is the app's standard input. If nil, an empty reader is used.
	Stdin io.Reader
	// Env contains environment variables visible to the app.
	Env map[string]string

	// WantErr, if set, requires the returned error to match with errors.Is.
	WantErr error
	// WantErrType, if set, requires the returned error to match with
	// errors.As against a value of the same type.
	WantErrType error
	// WantInStdout is a substring that must appear on standard output.
	WantInStdout string
	// WantInStderr is a substring that must appear on standard error.
	WantInStderr string
	// WantNothingPrinted requires both output streams to stay empty.
	WantNothingPrinted bool

	// CheckFunc runs after the app finishes, for custom assertions.
	CheckFunc func(*testing.T, App)
	// CheckOutput runs after the app finishes with the captured output
	// streams, for assertions a single substring can't express.
	CheckOutput func(t *testing.T, stdout, stderr string)
}

// Run executes every case as a subtest. The setup function constructs a
// fresh app for each case.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	t.Helper()

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}
			ctx := cli.WithEnv(context.Background(), env)

			err := cli.Run(ctx, app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout must be empty, got: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr must be empty, got: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
			if tc.CheckOutput != nil {
				tc.CheckOutput(t, stdout.String(), stderr.String())
			}
		})
	}
}
