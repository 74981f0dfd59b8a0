package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.rp файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".rp" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds seeds the corpus with programs that cover every
// termination scenario: implicit returns, continuations, indentation
// joins, the explicit-terminator mix.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"fn main() -> int { return 0; }\n",
		"fn main() -> int {\n    let x = 1\n    x\n}\n",
		"let total = 1\n  + 2\n  + 3\n",
		"fn main() {\n    a()\n    \\\n    + b()\n}\n",
		"fn main() {\n    return\n        value()\n}\n",
		"fn main() {\n    while ready()\n    {\n        step()\n    }\n}\n",
		"import std.io\n\nfn main() {\n    print(\"hi\")\n}\n",
		"fn f() { { { { } } } }\n",
		"fn main() {\n    let x = 1;\n    let y = 2\n    x + y\n}\n",
		"let s = \"multi\nline?\"\n",
		"fn broken( {\n",
		"\t let mixed = 1\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
