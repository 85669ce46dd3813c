// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package klex compiles ".klex" lexer specification files into an in-memory
LexerSpec: an ordered list of rules, each pairing a canonical regular
expression with either a token kind or a block of opaque action code.

A specification is plain text split into three sections by lines whose
trimmed content is exactly "%%":

	(prefix code, passed through verbatim)
	%%
	(rules: patterns mapped to token kinds or action code)
	%%
	(suffix code, passed through verbatim)

ParseSpec drives the whole pipeline: it splits the input into sections,
parses each rule line (pattern.go normalizes the pattern half into a
canonical regex; parser.go handles the directive and arrow syntax), then
hands the resulting rule list to the IR builder in build.go, which assigns
dense token identifiers, folds in %token declarations and the reserved
Whitespace/Newline/Unknown kinds, and validates every context predecessor.

Package klex does not tokenize anything by itself. The engine that walks a
LexerSpec against input text lives in the runtime subpackage; the
standalone-source generator lives in the emit subpackage. klex is the spec
compiler, runtime is the executable semantics, emit is the (thin)
transformation from one to the other.
*/
package klex
