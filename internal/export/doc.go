// Package export hands a generated report to the user as a file.
//
// SaveFile writes it to a directory on disk and Download sends it as an
// HTTP attachment. Both take the finished document and only move bytes;
// rendering lives in the report package.
package export
