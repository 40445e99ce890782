package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"torrentmeta/pkg/backend"
	"torrentmeta/pkg/bencode"
	"torrentmeta/pkg/torrent"

	"github.com/samber/lo"
)

func printMetainfo(w io.Writer, file *backend.FileInfo, mi *torrent.Metainfo) {
	if file != nil {
		fmt.Fprintf(w, "File: %s (%d bytes)\n", file.Name, file.Size)
	}
	fmt.Fprintln(w, "Announce:", mi.Announce)
	for i, tier := range mi.AnnounceList {
		fmt.Fprintf(w, "Tier %d: %s\n", i+1, strings.Join(tier, ", "))
	}
	if mi.CreationDate != nil {
		fmt.Fprintln(w, "Creation date:", mi.CreationDate.Format(time.RFC3339))
	}
	if mi.Comment != nil {
		fmt.Fprintln(w, "Comment:", *mi.Comment)
	}
	if mi.CreatedBy != nil {
		fmt.Fprintln(w, "Created by:", *mi.CreatedBy)
	}
	if mi.Encoding != nil {
		fmt.Fprintln(w, "Encoding:", *mi.Encoding)
	}
	if hash, err := mi.HashInfo(); err == nil {
		fmt.Fprintln(w, "Info hash:", hash.HexString())
	}

	fmt.Fprintln(w, "Info:")
	keys := lo.Keys(mi.Info)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, summarize(mi.Info[k]))
	}
}

// summarize renders a value on one line. Containers and opaque bytes are
// described rather than dumped.
func summarize(v bencode.Value) string {
	switch v := v.(type) {
	case bencode.String:
		return string(v)
	case bencode.Int:
		return fmt.Sprint(int64(v))
	case bencode.Bytes:
		return fmt.Sprintf("<%d bytes>", len(v))
	case bencode.List:
		return fmt.Sprintf("<list of %d>", len(v))
	case bencode.Dict:
		return fmt.Sprintf("<dictionary of %d>", len(v))
	default:
		return "<empty>"
	}
}

type jsonMetainfo struct {
	File         string     `json:"file,omitempty"`
	Size         int64      `json:"size,omitempty"`
	Announce     string     `json:"announce"`
	AnnounceList [][]string `json:"announce_list,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
	CreatedBy    *string    `json:"created_by,omitempty"`
	Encoding     *string    `json:"encoding,omitempty"`
	InfoHash     string     `json:"info_hash,omitempty"`
	Info         any        `json:"info"`
}

func printJSON(w io.Writer, file *backend.FileInfo, mi *torrent.Metainfo) error {
	out := jsonMetainfo{
		Announce:     mi.Announce,
		AnnounceList: mi.AnnounceList,
		CreationDate: mi.CreationDate,
		Comment:      mi.Comment,
		CreatedBy:    mi.CreatedBy,
		Encoding:     mi.Encoding,
		Info:         jsonValue(mi.Info),
	}
	if file != nil {
		out.File, out.Size = file.Name, file.Size
	}
	if hash, err := mi.HashInfo(); err == nil {
		out.InfoHash = hash.HexString()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// jsonValue is bencode.Interface with opaque bytes hex-encoded, since JSON
// strings must be valid UTF-8.
func jsonValue(v bencode.Value) any {
	switch v := v.(type) {
	case bencode.Dict:
		return lo.MapValues(v, func(item bencode.Value, _ string) any { return jsonValue(item) })
	case bencode.List:
		return lo.Map(v, func(item bencode.Value, _ int) any { return jsonValue(item) })
	case bencode.Bytes:
		return hex.EncodeToString(v)
	default:
		return bencode.Interface(v)
	}
}
