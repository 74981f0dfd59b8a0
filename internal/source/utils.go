package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

var bomPrefix = []byte{0xEF, 0xBB, 0xBF}

// removeBOM strips a UTF-8 byte order mark if present.
func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bomPrefix) {
		return content[len(bomPrefix):], true
	}
	return content, false
}

// normalizeCRLF rewrites "\r\n" into "\n" so that all downstream offsets
// refer to LF-only content. Lone '\r' is left intact and will be reported
// by the lexer.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte{'\r', '\n'}, []byte{'\n'}), true
}

// buildLineIndex собирает байтовые позиции всех '\n' в содержимом.
// LineIdx[i] - позиция конца строки i+1.
func buildLineIndex(content []byte) []uint32 {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			pos, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line index position overflow: %w", err))
			}
			idx = append(idx, pos)
		}
	}
	return idx
}

// toLineCol converts a byte offset into a 1-based line/column pair using
// the precomputed line index. Column is measured in bytes from line start.
func toLineCol(lineIdx []uint32, offset uint32) LineCol {
	// первая строка, чей '\n' находится на offset или позже
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= offset
	})

	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}

	lineNum, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{
		Line: lineNum,
		Col:  offset - lineStart + 1,
	}
}

// normalizePath приводит путь к slash-форме, чтобы ключи index совпадали
// на разных ОС.
func normalizePath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
