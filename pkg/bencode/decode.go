package bencode

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"sync/atomic"
	"unicode/utf8"
)

var logger atomic.Pointer[log.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger replaces the package logger used by decoders created without
// WithLogger. Passing nil silences it again. Decoders pick up the logger
// when they are created, so one already running keeps the old one.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "bencode: ", log.LstdFlags)
	}
	logger.Store(l)
}

// Decoder decodes bencode from an in-memory buffer. The cursor only moves
// forward. A Decoder is not safe for concurrent use.
type Decoder struct {
	buf   []byte
	pos   int
	depth int
	cfg   config

	// raw spans of the values of the root dictionary, keyed by dictionary key
	raw map[string][]byte
}

// NewDecoder returns a decoder reading from buf.
func NewDecoder(buf []byte, opts ...Option) *Decoder {
	return &Decoder{buf: buf, cfg: newConfig(opts)}
}

// Decode decodes a single value from the start of buf. Bytes following the
// value are ignored.
func Decode(buf []byte, opts ...Option) (Value, error) {
	return NewDecoder(buf, opts...).Decode()
}

// Pos returns the cursor. After a successful Decode it points just past the
// last byte of the decoded value.
func (d *Decoder) Pos() int {
	return d.pos
}

// RawValue returns the encoded bytes of the value stored under key in the
// most recently decoded root dictionary. The slice aliases the input buffer.
func (d *Decoder) RawValue(key string) ([]byte, bool) {
	b, ok := d.raw[key]
	return b, ok
}

// Decode decodes the value at the cursor. On failure the cursor is left
// where it was and no value is returned.
func (d *Decoder) Decode() (Value, error) {
	start := d.pos
	d.depth = 0
	d.raw = make(map[string][]byte)

	v, end, err := d.next()
	if err == nil && end {
		err = d.fail(start, ErrWrongCharacter)
	}
	if err != nil {
		d.pos = start
		d.raw = nil
		return nil, err
	}

	d.cfg.logger.Printf("Decode: %s consumed=%d", v.Kind(), d.pos-start)
	return v, nil
}

// next dispatches on the byte at the cursor. end is true when the byte was
// a container terminator, which is consumed.
func (d *Decoder) next() (v Value, end bool, err error) {
	c, err := d.peek()
	if err != nil {
		return nil, false, err
	}

	switch {
	case c == 'd':
		v, err = d.decodeDict()
	case c == 'l':
		v, err = d.decodeList()
	case c == 'i':
		v, err = d.decodeInteger()
	case c >= '0' && c <= '9':
		v, err = d.decodeByteString()
	case c == 'e':
		d.pos++
		return nil, true, nil
	default:
		return nil, false, d.fail(d.pos, fmt.Errorf("%w %q", ErrWrongCharacter, c))
	}
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

func (d *Decoder) peek() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, d.fail(d.pos, ErrUnexpectedEndOfBuffer)
	}
	return d.buf[d.pos], nil
}

func (d *Decoder) fail(at int, err error) error {
	d.cfg.logger.Printf("error at offset %d: %v", at, err)
	return &FormatError{Offset: at, Err: err}
}

func (d *Decoder) enter() error {
	if d.depth >= d.cfg.maxDepth {
		return d.fail(d.pos, fmt.Errorf("%w: limit is %d", ErrNestingTooDeep, d.cfg.maxDepth))
	}
	d.depth++
	return nil
}

// decodeDict, decodeList and decodeInteger are only reached from next, which
// has already seen their leading byte.
func (d *Decoder) decodeDict() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	root := d.depth == 1
	d.pos++

	dict := make(Dict)
	for {
		keyAt := d.pos
		keyVal, end, err := d.next()
		if err != nil {
			return nil, err
		}
		if end {
			d.cfg.logger.Printf("decodeDict: entries=%d", len(dict))
			return dict, nil
		}

		key, ok := keyVal.(String)
		if !ok {
			return nil, d.fail(keyAt, fmt.Errorf("%w: got %s", ErrWrongKeyFormat, keyVal.Kind()))
		}

		valueAt := d.pos
		val, end, err := d.next()
		if err != nil {
			return nil, err
		}
		if end {
			return nil, d.fail(valueAt, fmt.Errorf("%w: key %q has no value", ErrDictionary, string(key)))
		}

		if root {
			d.raw[string(key)] = d.buf[valueAt:d.pos]
		}
		dict[string(key)] = val
	}
}

func (d *Decoder) decodeList() (Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()

	d.pos++

	list := List{}
	for {
		v, end, err := d.next()
		if err != nil {
			return nil, err
		}
		if end {
			d.cfg.logger.Printf("decodeList: elements=%d", len(list))
			return list, nil
		}
		list = append(list, v)
	}
}

func (d *Decoder) decodeInteger() (Value, error) {
	begin := d.pos + 1
	n := bytes.IndexByte(d.buf[begin:], 'e')
	if n < 0 {
		return nil, d.fail(len(d.buf), fmt.Errorf("%w: unterminated integer", ErrUnexpectedEndOfBuffer))
	}

	digits := d.buf[begin : begin+n]
	val, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return nil, d.fail(begin, fmt.Errorf("%w: %q", ErrFailedToParseInteger, digits))
	}

	d.pos = begin + n + 1
	d.cfg.logger.Printf("decodeInteger: parsed=%d", val)
	return Int(val), nil
}

func (d *Decoder) decodeByteString() (Value, error) {
	colon := bytes.IndexByte(d.buf[d.pos:], ':')
	if colon < 0 {
		return nil, d.fail(len(d.buf), fmt.Errorf("%w: missing ':' after string length", ErrUnexpectedEndOfBuffer))
	}

	lengthAt := d.pos
	digits := d.buf[lengthAt : lengthAt+colon]
	if !utf8.Valid(digits) {
		return nil, d.fail(lengthAt, ErrNumberNotInUTF8)
	}
	length, err := strconv.ParseUint(string(digits), 10, 0)
	if err != nil {
		return nil, d.fail(lengthAt, fmt.Errorf("%w: string length %q", ErrFailedToParseInteger, digits))
	}

	begin := lengthAt + colon + 1
	if length > uint64(len(d.buf)-begin) {
		return nil, d.fail(len(d.buf), fmt.Errorf("%w: string declares %d bytes, %d available",
			ErrUnexpectedEndOfBuffer, length, len(d.buf)-begin))
	}

	contents := d.buf[begin : begin+int(length)]
	d.pos = begin + int(length)

	if utf8.Valid(contents) {
		return String(contents), nil
	}
	d.cfg.logger.Printf("decodeByteString: %d bytes kept opaque", length)
	return Bytes(bytes.Clone(contents)), nil
}
