// Package fuzztests houses Go fuzz harnesses that exercise the early
// ripple front end (source -> lexer -> terminator -> parser). Its goal is
// to smoke test robustness and guard against panics or allocator
// explosions on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в
// FileSet и прогоняют их через лексер, проход терминации и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/asi,
// internal/parser, internal/diag, internal/ast, internal/testkit.
package fuzztests
