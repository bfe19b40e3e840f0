// Package core defines the filesystem contract that resources operate on.
//
// Providers implement FS; the optional MetadataFS and SymlinkFS capabilities
// are discovered with type assertions:
//
//	if sfs, ok := fsys.(core.SymlinkFS); ok {
//	    err := sfs.Symlink("/srv/releases/42", "/srv/current")
//	}
//
// The package also carries the provider-independent algorithms built only on
// that contract: Realpath resolves a canonical path one component at a time,
// and CopyFile/CopyTree implement recursive copies that preserve permission
// bits and symbolic links.
//
// Concrete providers live in the billy package.
package core
