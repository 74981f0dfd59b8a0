// Package token defines the lexical token kinds of the ripple language,
// the Token value produced by the lexer, and the trivia model that carries
// whitespace, comments and line-continuation markers between tokens.
//
// Tokens own their leading trivia: everything between the previous token
// and this one is attached to Leading. This keeps the stream lossless and
// lets later stages (statement termination, formatting) inspect layout
// without re-reading the file.
package token
