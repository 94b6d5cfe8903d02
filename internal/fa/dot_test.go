package fa

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportDOTForDFA(t *testing.T) {
	d := mustDeterminize(t, mustCompile(t, "ab."), []rune("ab"))
	var buf bytes.Buffer
	if err := ExportDOT(&buf, d); err != nil {
		t.Fatal(err)
	}
	want := `digraph G {
    rankdir=LR;
    q0 [shape=circle];
    q0 -> q1 [label="a"];
    q1 [shape=circle];
    q1 -> q2 [label="b"];
    q2 [shape=doublecircle];
    _start [shape=point]; _start -> q0;
}
`
	if buf.String() != want {
		t.Fatalf("DOT output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExportDOTForNFA(t *testing.T) {
	n := mustCompile(t, "ab.")
	var buf bytes.Buffer
	if err := ExportDOT(&buf, n); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, frag := range []string{
		`n0 -> n1 [label="a"];`,
		`n1 -> n2 [label="ε"];`,
		`n2 -> n3 [label="b"];`,
		`n3 [shape=doublecircle];`,
		`_start -> n0;`,
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("DOT output lacks %q:\n%s", frag, out)
		}
	}
}

func TestExportDOTUnknownType(t *testing.T) {
	if err := ExportDOT(&bytes.Buffer{}, "ab."); err == nil {
		t.Fatalf("expected error for a string argument")
	}
}

func TestWriteNFA(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNFA(&buf, mustCompile(t, "a*")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// a: 0 -> 1, star: 2 (start), 3 (accept)
	for _, frag := range []string{
		"State 2 (START):\n  --[ε]--> State 3\n  --[ε]--> State 0\n",
		"State 3 (ACCEPT):\n",
		"State 1:\n  --[ε]--> State 0\n  --[ε]--> State 3\n",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("NFA dump lacks %q:\n%s", frag, out)
		}
	}
}
