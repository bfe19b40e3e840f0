package composer

import (
	"strings"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/jsonfile"
	"github.com/medusaphp/filesystem/resource"
)

// LockName is the file name of a lock file.
const LockName = "composer.lock"

// Lock is a composer.lock document with typed access to its packages.
type Lock struct {
	*jsonfile.File

	packages []*Package
}

// NewLock wraps file without reading it.
func NewLock(file *resource.File) *Lock {
	return &Lock{File: jsonfile.New(file)}
}

// OpenLock wraps file and loads it when it exists.
func OpenLock(file *resource.File) (*Lock, error) {
	l := NewLock(file)
	if l.Exists() {
		if err := l.Load(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// OpenLockIn opens the composer.lock inside dir.
func OpenLockIn(dir string, opts ...resource.Option) (*Lock, error) {
	return OpenLock(resource.NewFile(strings.TrimRight(dir, "/")+"/"+LockName, opts...))
}

// Load reads the file and rebuilds the package list.
func (l *Lock) Load() error {
	if err := l.File.Load(); err != nil {
		return err
	}
	return l.parse()
}

// SetContent parses text and rebuilds the package list.
func (l *Lock) SetContent(text string) error {
	if err := l.File.SetContent(text); err != nil {
		return err
	}
	return l.parse()
}

func (l *Lock) parse() error {
	l.packages = nil
	entries, err := listAt(l.Data(), "packages")
	if err != nil {
		return errors.WithContext(err, "location", l.Location())
	}
	for _, entry := range entries {
		obj, ok := entry.(*jsonfile.Object)
		if !ok {
			return errors.WithContext(
				errors.New(errors.CodeDecodeFailed, "packages entries must be objects"),
				"location", l.Location())
		}
		p, err := NewPackage(obj)
		if err != nil {
			return errors.WithContext(err, "location", l.Location())
		}
		l.packages = append(l.packages, p)
	}
	return nil
}

// Packages returns the locked packages in document order.
func (l *Lock) Packages() []*Package {
	return append([]*Package(nil), l.packages...)
}

// Package returns the package stored under "name#version".
func (l *Lock) Package(key string) (*Package, bool) {
	for _, p := range l.packages {
		if p.Key() == key {
			return p, true
		}
	}
	return nil, false
}

// Document returns the lock as it is saved, with every package rendered
// from its model.
func (l *Lock) Document() *jsonfile.Object {
	doc := l.Data().Clone()
	if _, ok := doc.Get("packages"); !ok && len(l.packages) == 0 {
		return doc
	}
	packages := make([]interface{}, 0, len(l.packages))
	for _, p := range l.packages {
		packages = append(packages, p.Data())
	}
	doc.Set("packages", packages)
	return doc
}

// Save writes Document to the file.
func (l *Lock) Save() error {
	return l.SaveDocument(l.Document())
}

// Content returns Document encoded as JSON.
func (l *Lock) Content() (string, error) {
	return l.JSON()
}

// JSON returns Document encoded as JSON.
func (l *Lock) JSON() (string, error) {
	text, err := jsonfile.Encode(l.Document())
	if err != nil {
		return "", errors.WithContext(err, "location", l.Location())
	}
	return text, nil
}

// Package is one entry of a lock file's "packages".
type Package struct {
	data    *jsonfile.Object
	name    string
	version string
	dist    *jsonfile.Object
}

// NewPackage builds a package from its lock entry, which must carry a name.
func NewPackage(data *jsonfile.Object) (*Package, error) {
	name, ok := data.Get("name")
	if !ok || text(name) == "" {
		return nil, errors.New(errors.CodeDecodeFailed, "package entry without name")
	}
	version, _ := data.Get("version")

	dist := jsonfile.NewObject()
	if d, ok := data.Get("dist"); ok {
		if obj, ok := d.(*jsonfile.Object); ok {
			dist = obj.Clone()
		}
	}
	for _, key := range []string{"type", "url", "shasum"} {
		if _, ok := dist.Get(key); !ok {
			dist.Set(key, "")
		}
	}

	return &Package{data: data, name: text(name), version: text(version), dist: dist}, nil
}

func (p *Package) Name() string    { return p.name }
func (p *Package) Version() string { return p.version }

// Key returns "name#version".
func (p *Package) Key() string {
	return p.name + "#" + p.version
}

func (p *Package) SetName(name string)       { p.name = name }
func (p *Package) SetVersion(version string) { p.version = version }

// Dist returns the distribution type, url and checksum.
func (p *Package) Dist() (typ, url, shasum string) {
	return text(mustGet(p.dist, "type")), text(mustGet(p.dist, "url")), text(mustGet(p.dist, "shasum"))
}

// SetDistType overrides the distribution type.
func (p *Package) SetDistType(typ string) { p.dist.Set("type", typ) }

// SetDistURL overrides the distribution url.
func (p *Package) SetDistURL(url string) { p.dist.Set("url", url) }

// SetDistShasum overrides the distribution checksum.
func (p *Package) SetDistShasum(shasum string) { p.dist.Set("shasum", shasum) }

// Data returns the lock entry with name, version and dist taken from the
// model.
func (p *Package) Data() *jsonfile.Object {
	out := p.data.Clone()
	out.Set("name", p.name)
	out.Set("version", p.version)
	out.Set("dist", p.dist.Clone())
	return out
}
