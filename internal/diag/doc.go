// Package diag is the diagnostic backbone of the ripple front end.
//
// Phases never print: they report structured diagnostics through the
// Reporter interface, and the driver decides how to render them (pretty,
// short, json). Codes are stable numeric identifiers grouped by phase:
//
//	1000-1499  LEX  lexical errors
//	1500-1999  ASI  statement-termination diagnostics
//	2000-2999  SYN  parse errors
//	4000-4999  IO   file system errors
//	5000-5999  PRJ  project/manifest errors
package diag
