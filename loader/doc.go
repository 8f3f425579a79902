// Package loader reads ROM, tape and disk images from the filesystem (or an
// http/https URL) into memory and identifies which kind of image they are,
// either from an explicit hint or from the file extension.
package loader
