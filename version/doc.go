// Package version exposes the library version used in the User-Agent header.
package version
