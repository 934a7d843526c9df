// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/esfront/esfront/parse"
	"github.com/esfront/esfront/report"
	"github.com/esfront/esfront/resolve"
	"github.com/esfront/esfront/syntax"
)

func resolved(t *testing.T, src string) *syntax.Script {
	t.Helper()
	s, err := parse.Script(context.Background(), "a.js", []byte(src))
	require.NoError(t, err)
	require.NoError(t, resolve.Script(s, resolve.DefaultOptions()))
	return s
}

const program = `let x = 1;
function f(a) {
  { let y; }
  return arguments;
}
`

func TestText(t *testing.T) {
	s := resolved(t, program)
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, s.Scope))
	want := `script scope at 1:1
  function f @2:1
  let x @1:5
  function scope at 2:1 [arguments]
    parameter a @2:12
    arguments arguments @2:1
    block scope at 3:3
      let y @3:9
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}
}

func TestModuleText(t *testing.T) {
	m, err := parse.Module(context.Background(), "m.js", []byte(`import { a as b } from "x";
export { b as c };
export * from "y";
`))
	require.NoError(t, err)
	require.NoError(t, resolve.Module(m, resolve.DefaultOptions()))
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, m.Scope))
	want := `module scope at 1:1 [strict]
  import b @1:15
  import a as b from "x"
  export c = b
  export - from "y"
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	s := resolved(t, program)
	data, err := report.JSON(s.Scope, "  ")
	require.NoError(t, err)

	// The encoder's spacing is deliberately unstable; compare values.
	var got structpb.Struct
	require.NoError(t, protojson.Unmarshal(data, &got))
	m := got.AsMap()
	require.Equal(t, "script", m["kind"])
	require.Equal(t, "1:1", m["pos"])

	children := m["children"].([]interface{})
	require.Len(t, children, 1)
	fn := children[0].(map[string]interface{})
	require.Equal(t, "function", fn["kind"])
	require.Equal(t, []interface{}{"arguments"}, fn["flags"])
	decls := fn["decls"].([]interface{})
	require.Equal(t, map[string]interface{}{"name": "a", "kind": "parameter", "pos": "2:12"}, decls[0])

	compact, err := report.JSON(s.Scope, "")
	require.NoError(t, err)
	require.NotContains(t, string(compact), "\n")
}

func TestRefs(t *testing.T) {
	s := resolved(t, `let x = 1; x; y;`)
	var buf bytes.Buffer
	require.NoError(t, report.WriteRefs(&buf, s))
	want := `1:12 x: let x in script scope at 1:1
1:15 y: global
`
	require.Equal(t, want, buf.String())

	s = resolved(t, `function f(o) { with (o) { z; } }`)
	refs := report.Refs(s)
	require.Len(t, refs, 2)
	for _, r := range refs {
		require.False(t, r.Resolved(), r.Name)
		require.True(t, strings.HasSuffix(r.String(), ": dynamic"), r.String())
	}
}
