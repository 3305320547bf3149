// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/zstd"
)

// backupVersion is bumped whenever Backup changes shape.
const backupVersion = 1

// Backup is the JSON document stored inside an export file.
type Backup struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Export writes every entry, oldest first, as zstd-compressed JSON.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.List(ctx, 0)
	if err != nil {
		return 0, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("could not create zstd writer: %w", err)
	}
	encoder := json.NewEncoder(zw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Backup{Version: backupVersion, Entries: entries}); err != nil {
		_ = zw.Close()
		return 0, fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return len(entries), nil
}

// ReadBackup decodes a zstd-compressed JSON export.
func ReadBackup(r io.Reader) (*Backup, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var b Backup
	if err := json.NewDecoder(zr).Decode(&b); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if b.Version != backupVersion {
		return nil, fmt.Errorf("unsupported tape backup version %d", b.Version)
	}
	return &b, nil
}

// Import appends the entries of an export to the tape.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	b, err := ReadBackup(r)
	if err != nil {
		return 0, err
	}
	if err := s.insertAll(ctx, b.Entries); err != nil {
		return 0, fmt.Errorf("import tape: %w", err)
	}
	return len(b.Entries), nil
}
