package billy

import (
	"io/fs"
	"strings"
	"sync"
	"time"
)

// attrTable overlays permission bits and modification times on top of a
// backend that cannot store them. A nil table is valid and changes nothing.
type attrTable struct {
	mu      sync.Mutex
	entries map[string]attr
}

type attr struct {
	perm    fs.FileMode
	hasPerm bool
	mtime   time.Time
}

func newAttrTable() *attrTable {
	return &attrTable{entries: make(map[string]attr)}
}

func (t *attrTable) setPerm(name string, perm fs.FileMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a := t.entries[name]
	a.perm = perm.Perm()
	a.hasPerm = true
	t.entries[name] = a
}

func (t *attrTable) setModTime(name string, mtime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a := t.entries[name]
	a.mtime = mtime
	t.entries[name] = a
}

func (t *attrTable) apply(name string, info fs.FileInfo) fs.FileInfo {
	if t == nil || info == nil {
		return info
	}
	t.mu.Lock()
	a, ok := t.entries[normalize(name)]
	t.mu.Unlock()
	if !ok {
		return info
	}
	return &fileInfo{FileInfo: info, attr: a}
}

func (t *attrTable) forget(name string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, name)
}

func (t *attrTable) forgetTree(name string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.entries {
		if key == name || strings.HasPrefix(key, name+"/") {
			delete(t.entries, key)
		}
	}
}

func (t *attrTable) rename(from, to string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if a, ok := t.entries[from]; ok {
		t.entries[to] = a
		delete(t.entries, from)
	}
}

// fileInfo decorates backend info with overlaid attributes.
type fileInfo struct {
	fs.FileInfo
	attr attr
}

func (fi *fileInfo) Mode() fs.FileMode {
	mode := fi.FileInfo.Mode()
	if fi.attr.hasPerm {
		mode = mode&^fs.ModePerm | fi.attr.perm
	}
	return mode
}

func (fi *fileInfo) ModTime() time.Time {
	if !fi.attr.mtime.IsZero() {
		return fi.attr.mtime
	}
	return fi.FileInfo.ModTime()
}
