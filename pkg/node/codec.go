package node

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedTree is returned when a serialized tree cannot be decoded.
var ErrMalformedTree = errors.New("malformed tree encoding")

// wire is the serialized shape of a single node. Exactly one of Op, Term or
// Param is set.
type wire struct {
	Op       string            `json:"op,omitempty"`
	Term     *float64          `json:"term,omitempty"`
	Param    *int              `json:"param,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
}

// Encode serializes a tree to its JSON representation.
func Encode(n Node) ([]byte, error) {
	return json.Marshal(toWire(n))
}

// full is the eagerly-built counterpart of wire, used for encoding.
type full struct {
	Op       string   `json:"op,omitempty"`
	Term     *float64 `json:"term,omitempty"`
	Param    *int     `json:"param,omitempty"`
	Children []full   `json:"children,omitempty"`
}

func toWire(n Node) full {
	switch v := n.(type) {
	case *Terminal:
		value := v.Value()
		return full{Term: &value}
	case *Param:
		index := v.Index()
		return full{Param: &index}
	default:
		children := make([]full, 0, len(n.Children()))
		for _, c := range n.Children() {
			children = append(children, toWire(c))
		}
		return full{Op: n.Name(), Children: children}
	}
}

// Decode deserializes a tree from its JSON representation.
func Decode(data []byte) (Node, error) {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}
	return fromWire(&w)
}

func fromWire(w *wire) (Node, error) {
	switch {
	case w.Term != nil:
		return NewTerminal(*w.Term), nil
	case w.Param != nil:
		return NewParam(*w.Param), nil
	case w.Op != "":
		children := make([]Node, 0, len(w.Children))
		for _, raw := range w.Children {
			var cw wire
			if err := json.Unmarshal(raw, &cw); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
			}
			child, err := fromWire(&cw)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		switch w.Op {
		case "+":
			return NewAddition(children...), nil
		case "*":
			return NewMultiplication(children...), nil
		case "/":
			return NewDivision(children...), nil
		case "-":
			return NewSubtraction(children...), nil
		default:
			return nil, fmt.Errorf("%w: unknown operator %q", ErrMalformedTree, w.Op)
		}
	default:
		return nil, fmt.Errorf("%w: node is neither operator, terminal nor param", ErrMalformedTree)
	}
}
