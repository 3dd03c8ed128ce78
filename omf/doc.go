// Package omf models the interchange surface elements exchanged with
// downstream mining and geology tools.
//
// An Element couples a named geometry with the scalar data arrays attached to
// it; a Project is the multi-element container. The geometry kinds form a
// closed set — converters dispatch on the concrete type and report elements
// whose kind they do not handle.
//
// Project files written by WriteProject are self-describing: the header
// records the codec used for the payload, and the payload is
// zstd-compressed.
package omf
