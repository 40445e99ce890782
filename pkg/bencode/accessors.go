package bencode

import (
	"errors"
	"fmt"
)

var (
	ErrNotDictionary = errors.New("value wasn't a dictionary")
	ErrNotList       = errors.New("value wasn't a list")
	ErrNotString     = errors.New("value wasn't a string")
	ErrNotInteger    = errors.New("value wasn't an integer")
)

func kindOf(v Value) Kind {
	if v == nil {
		return KindEmpty
	}
	return v.Kind()
}

// AsDict returns v as a dictionary.
func AsDict(v Value) (Dict, error) {
	d, ok := v.(Dict)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotDictionary, kindOf(v))
	}
	return d, nil
}

// AsList returns v as a list.
func AsList(v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotList, kindOf(v))
	}
	return l, nil
}

// AsString returns v as text. Byte strings that are not valid UTF-8 are
// rejected.
func AsString(v Value) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("%w: got %s", ErrNotString, kindOf(v))
	}
	return string(s), nil
}

// AsInt returns v as an integer.
func AsInt(v Value) (int64, error) {
	n, ok := v.(Int)
	if !ok {
		return 0, fmt.Errorf("%w: got %s", ErrNotInteger, kindOf(v))
	}
	return int64(n), nil
}
