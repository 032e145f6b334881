package binarytree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arbor"
)

// NullMarker denotes an absent child in the textual encoding of a tree.
const NullMarker = "#"

const separator = ","

// Serialize encodes a tree into a string. The encoding lists node values in
// pre-order, separated by commas, with NullMarker for every absent child:
//
//	10,2,#,#,8,#,12,#,#
//
// encodes a root 10 with a left leaf 2 and a right child 8, where 8 has a
// right leaf 12. The empty tree is encoded as a single NullMarker.
func (t *Tree[V]) Serialize() string {
	var sb strings.Builder
	serializeNode(t.root(), &sb)
	return sb.String()
}

func serializeNode[V arbor.Number](n *Node[V], sb *strings.Builder) {
	if sb.Len() > 0 {
		sb.WriteString(separator)
	}
	if n == nil {
		sb.WriteString(NullMarker)
		return
	}
	fmt.Fprint(sb, n.Val)
	serializeNode(n.Left, sb)
	serializeNode(n.Right, sb)
}

// Deserialize decodes a string created by Serialize. Whitespace around
// tokens is ignored.
//
// If s is not a valid encoding, an error wrapping ErrMalformedInput is returned.
func Deserialize[V arbor.Number](s string) (*Tree[V], error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("deserialize: empty input: %w", arbor.ErrMalformedInput)
	}
	dec := &textDecoder[V]{tokens: strings.Split(s, separator)}
	root, err := dec.node()
	if err != nil {
		T().Errorf("binarytree: %s", err.Error())
		return nil, err
	}
	if dec.pos < len(dec.tokens) {
		err = fmt.Errorf("deserialize: %d trailing tokens: %w", len(dec.tokens)-dec.pos,
			arbor.ErrMalformedInput)
		T().Errorf("binarytree: %s", err.Error())
		return nil, err
	}
	return New(root), nil
}

type textDecoder[V arbor.Number] struct {
	tokens []string
	pos    int
}

func (dec *textDecoder[V]) node() (*Node[V], error) {
	if dec.pos >= len(dec.tokens) {
		return nil, fmt.Errorf("deserialize: premature end of input: %w", arbor.ErrMalformedInput)
	}
	tok := strings.TrimSpace(dec.tokens[dec.pos])
	dec.pos++
	if tok == NullMarker {
		return nil, nil
	}
	v, err := parseValue[V](tok)
	if err != nil {
		return nil, fmt.Errorf("deserialize: token %d: %w", dec.pos, err)
	}
	n := Leaf(v)
	if n.Left, err = dec.node(); err != nil {
		return nil, err
	}
	if n.Right, err = dec.node(); err != nil {
		return nil, err
	}
	return n, nil
}

func parseValue[V arbor.Number](tok string) (V, error) {
	var v V
	r := strings.NewReader(tok)
	if _, err := fmt.Fscan(r, &v); err != nil || r.Len() > 0 {
		return v, fmt.Errorf("cannot read value %q: %w", tok, arbor.ErrMalformedInput)
	}
	return v, nil
}
