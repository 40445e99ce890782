package torrent

import (
	"fmt"
	"slices"
	"time"

	"torrentmeta/pkg/bencode"

	"github.com/samber/lo"
)

const (
	_keyAnnounce     = "announce"
	_keyAnnounceList = "announce-list"
	_keyCreationDate = "creation date"
	_keyComment      = "comment"
	_keyCreatedBy    = "created by"
	_keyCreatedByAlt = "created_by"
	_keyEncoding     = "encoding"
	_keyInfo         = "info"
)

// Bounds of a creation date, the years a calendar timestamp can print as.
var (
	minCreationDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxCreationDate = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// Project converts a decoded root value into a Metainfo. The recognised keys
// are removed from the root dictionary as they are read; unknown keys are
// left in place and ignored. "created by" is read first; "created_by" is
// only consulted, and only validated, when "created by" is absent.
func Project(root bencode.Value) (*Metainfo, error) {
	dict, err := bencode.AsDict(root)
	if err != nil {
		return nil, newError(ErrFileWasntDictionary, err)
	}

	mi := &Metainfo{}

	v, ok := dict.Take(_keyAnnounce)
	if !ok {
		return nil, newError(ErrFileWithoutAnnounce, nil)
	}
	if mi.Announce, err = bencode.AsString(v); err != nil {
		return nil, newError(ErrAnnounceWasntString, err)
	}

	if v, ok := dict.Take(_keyAnnounceList); ok {
		if mi.AnnounceList, err = parseAnnounceList(v); err != nil {
			return nil, newError(ErrBadlyFormattedAnnounceList, err)
		}
	}

	if v, ok := dict.Take(_keyCreationDate); ok {
		if mi.CreationDate, err = parseCreationDate(v); err != nil {
			return nil, err
		}
	}

	if mi.Comment, err = takeString(dict, _keyComment, ErrBadlyFormattedComment); err != nil {
		return nil, err
	}
	if mi.CreatedBy, err = takeString(dict, _keyCreatedBy, ErrBadlyFormattedCreatedBy); err != nil {
		return nil, err
	}
	if mi.CreatedBy == nil {
		if mi.CreatedBy, err = takeString(dict, _keyCreatedByAlt, ErrBadlyFormattedCreatedBy); err != nil {
			return nil, err
		}
	}
	if mi.Encoding, err = takeString(dict, _keyEncoding, ErrBadlyFormattedEncoding); err != nil {
		return nil, err
	}

	v, ok = dict.Take(_keyInfo)
	if !ok {
		return nil, newError(ErrFileWithoutInfo, nil)
	}
	if mi.Info, err = bencode.AsDict(v); err != nil {
		return nil, newError(ErrInfoWasntDictionary, err)
	}

	if len(dict) > 0 {
		ignored := lo.Keys(dict)
		slices.Sort(ignored)
		logger.Load().Printf("Project: ignoring keys %q", ignored)
	}

	return mi, nil
}

// takeString removes an optional string field. A missing key yields nil.
func takeString(dict bencode.Dict, key string, kind error) (*string, error) {
	v, ok := dict.Take(key)
	if !ok {
		return nil, nil
	}
	s, err := bencode.AsString(v)
	if err != nil {
		return nil, newError(kind, err)
	}
	return &s, nil
}

func parseAnnounceList(v bencode.Value) ([][]string, error) {
	tiers, err := bencode.AsList(v)
	if err != nil {
		return nil, err
	}

	announceList := make([][]string, 0, len(tiers))
	for i, tier := range tiers {
		urls, err := bencode.AsList(tier)
		if err != nil {
			return nil, fmt.Errorf("tier %d: %w", i, err)
		}
		parsed := make([]string, 0, len(urls))
		for j, url := range urls {
			s, err := bencode.AsString(url)
			if err != nil {
				return nil, fmt.Errorf("tier %d url %d: %w", i, j, err)
			}
			parsed = append(parsed, s)
		}
		announceList = append(announceList, parsed)
	}
	return announceList, nil
}

func parseCreationDate(v bencode.Value) (*time.Time, error) {
	secs, err := bencode.AsInt(v)
	if err != nil {
		return nil, newError(ErrBadlyFormattedCreationDate, err)
	}
	if secs < minCreationDate || secs > maxCreationDate {
		return nil, newError(ErrCreationDateOutOfRange,
			fmt.Errorf("%d seconds since epoch is outside [%d, %d]", secs, minCreationDate, maxCreationDate))
	}
	date := time.Unix(secs, 0).UTC()
	return &date, nil
}
