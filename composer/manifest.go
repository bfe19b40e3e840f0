package composer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/jsonfile"
	"github.com/medusaphp/filesystem/resource"
)

// ManifestName is the file name of a package manifest.
const ManifestName = "composer.json"

// managedKeys are the sections a Manifest rebuilds from its model, in the
// order new ones are appended.
var managedKeys = []string{"repositories", "require", "require-dev", "authors", "autoload", "autoload-dev"}

// Manifest is a composer.json document with typed access to requirements,
// repositories, authors and autoload mappings.
type Manifest struct {
	*jsonfile.File

	requirements []*Requirement
	repositories []*Repository
	// otherRepositories holds entries kept verbatim: anything but a plain
	// url/type object, such as {"packagist.org": false}.
	otherRepositories []interface{}
	authors           []*Author
	autoload          []*AutoloadResource
}

// NewManifest wraps file without reading it.
func NewManifest(file *resource.File) *Manifest {
	return &Manifest{File: jsonfile.New(file)}
}

// OpenManifest wraps file and loads it when it exists.
func OpenManifest(file *resource.File) (*Manifest, error) {
	m := NewManifest(file)
	if m.Exists() {
		if err := m.Load(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// OpenManifestIn opens the composer.json inside dir.
func OpenManifestIn(dir string, opts ...resource.Option) (*Manifest, error) {
	return OpenManifest(resource.NewFile(strings.TrimRight(dir, "/")+"/"+ManifestName, opts...))
}

// Load reads the file and rebuilds the model from it.
func (m *Manifest) Load() error {
	if err := m.File.Load(); err != nil {
		return err
	}
	return m.parse()
}

// SetContent parses text and rebuilds the model from it.
func (m *Manifest) SetContent(text string) error {
	if err := m.File.SetContent(text); err != nil {
		return err
	}
	return m.parse()
}

// Save writes Document to the file.
func (m *Manifest) Save() error {
	return m.SaveDocument(m.Document())
}

// Content returns Document encoded as JSON.
func (m *Manifest) Content() (string, error) {
	return m.JSON()
}

// JSON returns Document encoded as JSON.
func (m *Manifest) JSON() (string, error) {
	text, err := jsonfile.Encode(m.Document())
	if err != nil {
		return "", errors.WithContext(err, "location", m.Location())
	}
	return text, nil
}

func (m *Manifest) reset() {
	m.requirements = nil
	m.repositories = nil
	m.otherRepositories = nil
	m.authors = nil
	m.autoload = nil
}

func (m *Manifest) parse() error {
	m.reset()
	data := m.Data()

	for _, section := range []struct {
		key string
		dev bool
	}{{"require", false}, {"require-dev", true}} {
		obj, err := objectAt(data, section.key)
		if err != nil {
			return m.decodeError(err)
		}
		for _, name := range obj.Keys() {
			v, _ := obj.Get(name)
			r := NewRequirement(name, text(v))
			r.SetDev(section.dev)
			m.putRequirement(r)
		}
	}

	repos, err := listAt(data, "repositories")
	if err != nil {
		return m.decodeError(err)
	}
	for _, entry := range repos {
		obj, ok := entry.(*jsonfile.Object)
		if !ok {
			m.otherRepositories = append(m.otherRepositories, entry)
			continue
		}
		url, hasURL := obj.Get("url")
		typ, hasType := obj.Get("type")
		if !hasURL || !hasType || obj.Len() != 2 {
			m.otherRepositories = append(m.otherRepositories, entry)
			continue
		}
		m.AddRepository(NewRepository(text(url), text(typ)))
	}

	authors, err := listAt(data, "authors")
	if err != nil {
		return m.decodeError(err)
	}
	for _, entry := range authors {
		obj, ok := entry.(*jsonfile.Object)
		if !ok {
			return m.decodeError(errors.New(errors.CodeDecodeFailed, "authors entries must be objects"))
		}
		a := &Author{}
		if v, ok := obj.Get("name"); ok {
			a.Name = text(v)
		}
		if v, ok := obj.Get("email"); ok {
			a.Email = text(v)
		}
		if v, ok := obj.Get("homepage"); ok {
			a.Homepage = text(v)
		}
		if v, ok := obj.Get("role"); ok {
			a.Role = text(v)
		}
		m.authors = append(m.authors, a)
	}

	if err := m.parseAutoload(data, "autoload", false); err != nil {
		return m.decodeError(err)
	}
	if err := m.parseAutoload(data, "autoload-dev", true); err != nil {
		return m.decodeError(err)
	}
	return nil
}

func (m *Manifest) parseAutoload(data *jsonfile.Object, key string, dev bool) error {
	types, err := objectAt(data, key)
	if err != nil {
		return err
	}
	for _, typ := range types.Keys() {
		v, _ := types.Get(typ)
		switch mappings := v.(type) {
		case *jsonfile.Object:
			for _, ns := range mappings.Keys() {
				loc, _ := mappings.Get(ns)
				namespace := ns
				if _, err := strconv.Atoi(ns); err == nil {
					namespace = ""
				}
				for _, l := range locations(loc) {
					m.autoload = append(m.autoload, &AutoloadResource{Namespace: namespace, Location: l, Type: typ, Dev: dev})
				}
			}
		case []interface{}:
			for _, loc := range mappings {
				for _, l := range locations(loc) {
					m.autoload = append(m.autoload, &AutoloadResource{Location: l, Type: typ, Dev: dev})
				}
			}
		default:
			return errors.Newf(errors.CodeDecodeFailed, "%s.%s must be an object or a list", key, typ)
		}
	}
	return nil
}

func (m *Manifest) decodeError(err error) error {
	return errors.WithContext(err, "location", m.Location())
}

// Document returns the manifest as it is saved: the loaded document with
// every managed section rebuilt from the model and empty sections removed.
func (m *Manifest) Document() *jsonfile.Object {
	doc := m.Data().Clone()

	repos := make([]interface{}, 0, len(m.repositories)+len(m.otherRepositories))
	for _, r := range m.repositories {
		repos = append(repos, r)
	}
	repos = append(repos, m.otherRepositories...)
	doc.Set("repositories", repos)

	require, requireDev := jsonfile.NewObject(), jsonfile.NewObject()
	for _, r := range m.requirements {
		if r.IsDev() {
			requireDev.Set(r.Name(), r.Version())
		} else {
			require.Set(r.Name(), r.Version())
		}
	}
	doc.Set("require", require)
	doc.Set("require-dev", requireDev)

	authors := make([]interface{}, 0, len(m.authors))
	for _, a := range m.authors {
		authors = append(authors, a)
	}
	doc.Set("authors", authors)

	doc.Set("autoload", buildAutoload(m.autoload, false))
	doc.Set("autoload-dev", buildAutoload(m.autoload, true))

	for _, key := range managedKeys {
		if v, _ := doc.Get(key); isEmpty(v) {
			doc.Delete(key)
		}
	}
	return doc
}

// autoloadSection collects the mappings of one autoload type.
type autoloadSection struct {
	named *jsonfile.Object
	list  []interface{}
}

func buildAutoload(resources []*AutoloadResource, dev bool) *jsonfile.Object {
	var order []string
	sections := map[string]*autoloadSection{}

	for _, a := range resources {
		if a.Dev != dev {
			continue
		}
		s, ok := sections[a.Type]
		if !ok {
			s = &autoloadSection{named: jsonfile.NewObject()}
			sections[a.Type] = s
			order = append(order, a.Type)
		}
		if !a.HasNamespace() {
			s.list = append(s.list, a.Location)
			continue
		}
		switch prev := mustGet(s.named, a.Namespace).(type) {
		case nil:
			s.named.Set(a.Namespace, a.Location)
		case string:
			s.named.Set(a.Namespace, []interface{}{prev, a.Location})
		case []interface{}:
			s.named.Set(a.Namespace, append(prev, a.Location))
		}
	}

	out := jsonfile.NewObject()
	for _, typ := range order {
		s := sections[typ]
		if s.named.Len() == 0 {
			out.Set(typ, s.list)
			continue
		}
		for i, loc := range s.list {
			s.named.Set(strconv.Itoa(i), loc)
		}
		out.Set(typ, s.named)
	}
	return out
}

func mustGet(o *jsonfile.Object, key string) interface{} {
	v, _ := o.Get(key)
	return v
}

// Requirement returns the requirement on name.
func (m *Manifest) Requirement(name string) (*Requirement, bool) {
	for _, r := range m.requirements {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Requirements returns all requirements in document order.
func (m *Manifest) Requirements() []*Requirement {
	return append([]*Requirement(nil), m.requirements...)
}

// AddRequirement adds r, replacing a requirement on the same package. The
// source repository of r is added as well.
func (m *Manifest) AddRequirement(r *Requirement) {
	m.putRequirement(r)
	if r.Source() != nil {
		m.AddRepository(r.Source())
	}
}

func (m *Manifest) putRequirement(r *Requirement) {
	for i, existing := range m.requirements {
		if existing.Name() == r.Name() {
			m.requirements[i] = r
			return
		}
	}
	m.requirements = append(m.requirements, r)
}

// Repositories returns the url/type repositories in document order.
func (m *Manifest) Repositories() []*Repository {
	return append([]*Repository(nil), m.repositories...)
}

// AddRepository adds repo unless one with the same url and type exists.
func (m *Manifest) AddRepository(repo *Repository) {
	for i, existing := range m.repositories {
		if existing.String() == repo.String() {
			m.repositories[i] = repo
			return
		}
	}
	m.repositories = append(m.repositories, repo)
}

// Authors returns the authors in document order.
func (m *Manifest) Authors() []*Author {
	return append([]*Author(nil), m.authors...)
}

// AddAuthor appends an author.
func (m *Manifest) AddAuthor(a *Author) {
	m.authors = append(m.authors, a)
}

// AutoloadResources returns the autoload and autoload-dev mappings.
func (m *Manifest) AutoloadResources() []*AutoloadResource {
	return append([]*AutoloadResource(nil), m.autoload...)
}

// AddAutoloadResource appends an autoload mapping.
func (m *Manifest) AddAutoloadResource(a *AutoloadResource) {
	m.autoload = append(m.autoload, a)
}

// Name returns the package name.
func (m *Manifest) Name() string {
	v, _ := m.Data().Get("name")
	return text(v)
}

// SetName sets the package name.
func (m *Manifest) SetName(name string) { m.Data().Set("name", name) }

// SetType sets the package type.
func (m *Manifest) SetType(typ string) { m.Data().Set("type", typ) }

// SetDescription sets the package description.
func (m *Manifest) SetDescription(description string) { m.Data().Set("description", description) }

// objectAt returns the object under key. A missing key or an empty list
// yields an empty object.
func objectAt(data *jsonfile.Object, key string) (*jsonfile.Object, error) {
	v, ok := data.Get(key)
	if !ok || v == nil {
		return jsonfile.NewObject(), nil
	}
	switch t := v.(type) {
	case *jsonfile.Object:
		return t, nil
	case []interface{}:
		if len(t) == 0 {
			return jsonfile.NewObject(), nil
		}
	}
	return nil, errors.Newf(errors.CodeDecodeFailed, "%s must be an object", key)
}

// listAt returns the entries under key. An object yields its values.
func listAt(data *jsonfile.Object, key string) ([]interface{}, error) {
	v, ok := data.Get(key)
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case []interface{}:
		return t, nil
	case *jsonfile.Object:
		out := make([]interface{}, 0, t.Len())
		for _, k := range t.Keys() {
			out = append(out, mustGet(t, k))
		}
		return out, nil
	}
	return nil, errors.Newf(errors.CodeDecodeFailed, "%s must be a list", key)
}

// locations flattens a location or a list of locations.
func locations(v interface{}) []string {
	if list, ok := v.([]interface{}); ok {
		out := make([]string, 0, len(list))
		for _, e := range list {
			out = append(out, text(e))
		}
		return out
	}
	return []string{text(v)}
}

// text renders a scalar JSON value as a string.
func text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// isEmpty reports whether a managed section has nothing to say.
func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *jsonfile.Object:
		return t.Len() == 0
	case []interface{}:
		return len(t) == 0
	}
	return false
}
