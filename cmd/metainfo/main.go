package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"torrentmeta/pkg/backend"
	"torrentmeta/pkg/bencode"
	"torrentmeta/pkg/torrent"
)

func main() {
	verbose := flag.Bool("v", false, "log decoding steps to stderr")
	asJSON := flag.Bool("json", false, "print metainfo as JSON")
	maxDepth := flag.Int("max-depth", bencode.DefaultMaxDepth, "maximum list/dictionary nesting")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file.torrent>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		l := log.New(os.Stderr, "", log.LstdFlags)
		bencode.SetLogger(l)
		torrent.SetLogger(l)
		backend.SetLogger(l)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := run(os.Stdout, path, *asJSON, bencode.WithMaxDepth(*maxDepth)); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(w io.Writer, path string, asJSON bool, opts ...bencode.Option) error {
	data, file, err := backend.LoadTorrentFile(path)
	if err != nil {
		return err
	}

	mi, err := torrent.UnmarshalTorrent(data, opts...)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(w, file, mi)
	}
	printMetainfo(w, file, mi)
	return nil
}
