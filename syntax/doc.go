// Package syntax provides the lexical layer of the LHEF format: the
// literal block tags, the opening-tag attribute grammar, and the
// whitespace-separated numeric field codec shared by the reader and
// the writer.
package syntax
