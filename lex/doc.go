// Package lex tokenizes a document's bytes into ediseg.Segment tokens once
// its delimiter set is known, splitting each segment into fields,
// repetitions and composites and removing release-character escaping.
//
// Splitting itself is delegated to strs.ByteSplitWithEsc, which already
// understands "split on this byte unless it's preceded by the release
// byte" - the same primitive an EDI reader elsewhere in this ecosystem
// uses for the same purpose.
package lex
