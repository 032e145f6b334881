package dot

import (
	"bytes"
	"strings"
	"testing"
)

func TestIDTableAlloc(t *testing.T) {
	a, b := new(int), new(int)
	ids := NewIDTable[*int]()
	if id := ids.Find(a); id != 0 {
		t.Errorf("expected unallocated node to have id 0, has %d", id)
	}
	if id := ids.Alloc(a); id != 1 {
		t.Errorf("expected first id to be 1, is %d", id)
	}
	if id := ids.Alloc(b); id != 2 {
		t.Errorf("expected second id to be 2, is %d", id)
	}
	if id := ids.Alloc(a); id != 1 {
		t.Errorf("expected re-allocation to return 1, is %d", id)
	}
}

func TestGraphOutput(t *testing.T) {
	g := &Graph{}
	g.Node(1, "root", false)
	g.Node(2, "leaf", true)
	g.Edge(1, 2)
	g.EmptyChild(1)
	var bf bytes.Buffer
	if _, err := g.WriteTo(&bf); err != nil {
		t.Fatal(err)
	}
	out := bf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected strict digraph header")
	}
	for _, frag := range []string{`"1" -> "2";`, `"1" -> "-1";`, `label="leaf"`} {
		if !strings.Contains(out, frag) {
			t.Errorf("expected output to contain %s", frag)
		}
	}
}
