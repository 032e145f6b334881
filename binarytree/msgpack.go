package binarytree

import (
	"fmt"

	"github.com/hashicorp/go-msgpack/codec"
	"github.com/npillmayer/arbor"
)

var msgpackHandle = &codec.MsgpackHandle{}

// wireTree is the msgpack representation of a tree. Shape holds a presence
// flag for every node position in pre-order, including absent children;
// Values holds the values of present nodes in pre-order.
type wireTree[V arbor.Number] struct {
	Shape  []bool `codec:"shape"`
	Values []V    `codec:"values"`
}

// MarshalMsgpack encodes a tree in msgpack format.
func (t *Tree[V]) MarshalMsgpack() ([]byte, error) {
	w := wireTree[V]{}
	flatten(t.root(), &w)
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, msgpackHandle).Encode(&w); err != nil {
		return nil, err
	}
	return buf, nil
}

func flatten[V arbor.Number](n *Node[V], w *wireTree[V]) {
	if n == nil {
		w.Shape = append(w.Shape, false)
		return
	}
	w.Shape = append(w.Shape, true)
	w.Values = append(w.Values, n.Val)
	flatten(n.Left, w)
	flatten(n.Right, w)
}

// UnmarshalMsgpack decodes a tree from a byte slice created by MarshalMsgpack.
//
// If buf does not describe a valid tree, an error wrapping ErrMalformedInput
// is returned.
func UnmarshalMsgpack[V arbor.Number](buf []byte) (*Tree[V], error) {
	w := wireTree[V]{}
	if err := codec.NewDecoderBytes(buf, msgpackHandle).Decode(&w); err != nil {
		T().Errorf("binarytree: msgpack: %s", err.Error())
		return nil, fmt.Errorf("msgpack: %v: %w", err, arbor.ErrMalformedInput)
	}
	dec := &wireDecoder[V]{w: w}
	root, err := dec.node()
	if err == nil && (dec.shape < len(w.Shape) || dec.value < len(w.Values)) {
		err = fmt.Errorf("msgpack: trailing data: %w", arbor.ErrMalformedInput)
	}
	if err != nil {
		T().Errorf("binarytree: %s", err.Error())
		return nil, err
	}
	return New(root), nil
}

type wireDecoder[V arbor.Number] struct {
	w            wireTree[V]
	shape, value int
}

func (dec *wireDecoder[V]) node() (*Node[V], error) {
	if dec.shape >= len(dec.w.Shape) {
		return nil, fmt.Errorf("msgpack: shape too short: %w", arbor.ErrMalformedInput)
	}
	present := dec.w.Shape[dec.shape]
	dec.shape++
	if !present {
		return nil, nil
	}
	if dec.value >= len(dec.w.Values) {
		return nil, fmt.Errorf("msgpack: missing values: %w", arbor.ErrMalformedInput)
	}
	n := Leaf(dec.w.Values[dec.value])
	dec.value++
	var err error
	if n.Left, err = dec.node(); err != nil {
		return nil, err
	}
	if n.Right, err = dec.node(); err != nil {
		return nil, err
	}
	return n, nil
}
