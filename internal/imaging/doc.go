// Package imaging decodes source images, flattens transparency onto a white
// background, crops horizontal bands for page slicing, and encodes results
// for embedding into HTML documents.
package imaging
