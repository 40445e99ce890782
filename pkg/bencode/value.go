package bencode

import (
	"github.com/samber/lo"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindDict
	KindList
	KindString
	KindBytes
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindDict:
		return "dictionary"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "integer"
	default:
		return "empty"
	}
}

// Value is a decoded bencode node. The set of implementations is closed:
// Dict, List, String, Bytes, Int and Empty.
type Value interface {
	Kind() Kind
	value()
}

// Dict is a bencode dictionary. Keys are always valid UTF-8.
type Dict map[string]Value

// List is a bencode list in encounter order.
type List []Value

// String is a byte string whose contents decoded as valid UTF-8.
type String string

// Bytes is a byte string that is not valid UTF-8, e.g. piece hashes.
type Bytes []byte

// Int is a bencode integer.
type Int int64

// Empty is the zero placeholder. A successful decode never produces it.
type Empty struct{}

func (Dict) Kind() Kind   { return KindDict }
func (List) Kind() Kind   { return KindList }
func (String) Kind() Kind { return KindString }
func (Bytes) Kind() Kind  { return KindBytes }
func (Int) Kind() Kind    { return KindInt }
func (Empty) Kind() Kind  { return KindEmpty }

func (Dict) value()   {}
func (List) value()   {}
func (String) value() {}
func (Bytes) value()  {}
func (Int) value()    {}
func (Empty) value()  {}

// Take removes key from the dictionary and returns the value it held.
// Taking a key twice reports it as missing the second time.
func (d Dict) Take(key string) (Value, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	delete(d, key)
	return v, true
}

// Interface converts v into plain Go values: map[string]any, []any, string
// and int64. Bytes are returned as a string holding the raw bytes, the same
// shape other bencode packages produce. Empty and nil become nil.
func Interface(v Value) any {
	switch v := v.(type) {
	case Dict:
		return lo.MapValues(v, func(item Value, _ string) any {
			return Interface(item)
		})
	case List:
		return lo.Map(v, func(item Value, _ int) any {
			return Interface(item)
		})
	case String:
		return string(v)
	case Bytes:
		return string(v)
	case Int:
		return int64(v)
	default:
		return nil
	}
}
