// Package archive downloads branch snapshot archives from the archive host
// and extracts them onto disk. Downloads are buffered in memory; extraction
// refuses entries that would land outside the destination directory.
package archive
