package torrent

import (
	"bytes"

	"torrentmeta/pkg/bencode"
)

// UnmarshalTorrent decodes the contents of a .torrent file into a Metainfo.
// Decoder failures are reported as ErrBadFormat wrapping the
// *bencode.FormatError.
func UnmarshalTorrent(data []byte, opts ...bencode.Option) (*Metainfo, error) {
	dec := bencode.NewDecoder(data, opts...)
	root, err := dec.Decode()
	if err != nil {
		return nil, newError(ErrBadFormat, err)
	}

	mi, err := Project(root)
	if err != nil {
		return nil, err
	}

	if raw, ok := dec.RawValue(_keyInfo); ok {
		mi.InfoBytes = bytes.Clone(raw)
	}
	logger.Load().Printf("UnmarshalTorrent: announce=%s info keys=%d", mi.Announce, len(mi.Info))
	return mi, nil
}
