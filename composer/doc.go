// Package composer models PHP package manifests (composer.json) and lock
// files (composer.lock) on top of jsonfile.
//
// A Manifest keeps every member it does not manage untouched and in place.
// The managed sections are rebuilt from the model on every save and left
// out when empty.
package composer
