// Package huffcode implements Huffman coding over the 128-symbol 7-bit ASCII
// alphabet.  Symbol probabilities are measured from the input itself, a code
// tree is built from them with the linear-time two-queue merge, and the
// resulting bit strings are packed into bytes behind a short padding header.
//
// The packed format stores no code table.  A Decoder must be handed the same
// tree the Encoder used, either directly or via its JSON form.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding#Compression>
//
//     J. van Leeuwen, "On the construction of Huffman trees", ICALP 1976
//
package huffcode
