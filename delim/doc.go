// Package delim implements delimiter discovery: recovering a document's
// segment, field, subfield, repetition, and release characters from its
// envelope header before any tokenization can happen.
//
// X12 documents carry this information in the fixed-width ISA segment;
// EDIFACT documents carry it in an optional UNA service string segment,
// falling back to the standard default service string when UNA is absent.
package delim
