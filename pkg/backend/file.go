package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxTorrentFileSize bounds how much LoadTorrentFile will read into memory.
const MaxTorrentFileSize = 64 << 20

type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time // Last modification time
}

// ReadFileToBytes reads the whole file at path.
func ReadFileToBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadTorrentFile stats and reads a .torrent file. The decoder needs the
// whole buffer resident, so directories and oversized files are refused
// before reading.
func LoadTorrentFile(path string) ([]byte, *FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxTorrentFileSize {
		return nil, nil, fmt.Errorf("%s is %d bytes, larger than the %d byte limit", path, info.Size(), MaxTorrentFileSize)
	}
	if !strings.EqualFold(filepath.Ext(path), ".torrent") {
		logger.Load().Printf("LoadTorrentFile: %s has no .torrent extension", path)
	}

	data, err := ReadFileToBytes(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read torrent file: %w", err)
	}

	return data, &FileInfo{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
