// Package buffer implements the immutable UTF-16 text model and its
// code-point boundary index.
//
// Offsets come in two flavours: unit offsets index the UTF-16 code units of a
// Text, code-point indices count boundaries recorded in an Index. An Index
// stores Count()+1 boundaries; the last one is the unit length of the text.
package buffer
