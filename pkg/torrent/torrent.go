package torrent

import (
	"errors"
	"io"
	"log"
	"sync/atomic"
	"time"

	"torrentmeta/pkg/bencode"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/samber/lo"
)

var logger atomic.Pointer[log.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger replaces the package logger. Passing nil silences it again.
// Safe to call while projections are running.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "torrent: ", log.LstdFlags)
	}
	logger.Store(l)
}

// Metainfo is the typed view of a .torrent file's top-level dictionary.
type Metainfo struct {
	Announce     string
	AnnounceList [][]string // tiers of tracker URLs, nil when absent
	CreationDate *time.Time
	Comment      *string
	CreatedBy    *string
	Encoding     *string

	// Info is kept generic, its layout is not interpreted here.
	Info bencode.Dict

	// InfoBytes is the info dictionary exactly as it appeared in the file.
	// Only set by UnmarshalTorrent.
	InfoBytes []byte
}

var errNoInfoBytes = errors.New("raw info dictionary not available")

// HashInfo returns the SHA-1 of the raw info dictionary, the torrent's
// identity on trackers and in the peer handshake.
func (mi *Metainfo) HashInfo() (metainfo.Hash, error) {
	if len(mi.InfoBytes) == 0 {
		return metainfo.Hash{}, errNoInfoBytes
	}
	return metainfo.HashBytes(mi.InfoBytes), nil
}

// Trackers returns the announce URL followed by every announce-list URL,
// without duplicates.
func (mi *Metainfo) Trackers() []string {
	all := append([]string{mi.Announce}, lo.Flatten(mi.AnnounceList)...)
	return lo.Uniq(all)
}
