// Package chapters maps page files to chapters by their filename prefix and
// collates them into ordered chapter groups for book assembly.
package chapters
