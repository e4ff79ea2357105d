// Package mcbook lays text out into Minecraft written books and emits the
// give commands that create them.
//
// Text is split into documents at BookEnd markers, each document is broken
// into words, and a greedy paginator fills lines of BookWidth pixels and
// pages of BookHeight lines using a per-character width table. Quotes,
// apostrophes, backslashes and newlines are escaped for the command syntax
// of the requested game version, and escape sequences are never split across
// a line or page break. A PageEnd marker forces a page break.
//
// Example:
//
//	err := mcbook.Generate(mcbook.GenerateRequest{
//		Reader:  strings.NewReader("Once upon a time..."),
//		Writer:  os.Stdout,
//		Title:   "Tales",
//		Author:  "Steve",
//		Version: "1.21.5",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Fragments and widths can be replaced with WithFragmentTables and
// WithWidthTable.
package mcbook
