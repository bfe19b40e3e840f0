package composer

// Requirement is a package constraint from "require" or "require-dev".
type Requirement struct {
	name    string
	version string
	dev     bool
	source  *Repository
}

// NewRequirement returns a requirement on name. An empty version means any
// version.
func NewRequirement(name, version string) *Requirement {
	if version == "" {
		version = "*"
	}
	return &Requirement{name: name, version: version}
}

func (r *Requirement) Name() string    { return r.name }
func (r *Requirement) Version() string { return r.version }

// SetVersion changes the constraint.
func (r *Requirement) SetVersion(version string) {
	r.version = version
}

// IsDev reports whether the requirement belongs to "require-dev".
func (r *Requirement) IsDev() bool {
	return r.dev
}

// SetDev moves the requirement between "require" and "require-dev".
func (r *Requirement) SetDev(dev bool) {
	r.dev = dev
}

// Source returns the repository the package is installed from, if set.
func (r *Requirement) Source() *Repository {
	return r.source
}

// SetSource records where the package comes from. Adding the requirement to
// a Manifest also adds the repository.
func (r *Requirement) SetSource(repo *Repository) {
	r.source = repo
}

// String returns "name:version".
func (r *Requirement) String() string {
	return r.name + ":" + r.version
}

// Repository is an entry of "repositories".
type Repository struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// NewRepository returns a repository of the given type at url.
func NewRepository(url, typ string) *Repository {
	return &Repository{URL: url, Type: typ}
}

// String returns "url-type", the key repositories are deduplicated by.
func (r *Repository) String() string {
	return r.URL + "-" + r.Type
}

// Author is an entry of "authors".
type Author struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Homepage string `json:"homepage,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Autoload types understood by composer.
const (
	AutoloadPsr4     = "psr-4"
	AutoloadPsr0     = "psr-0"
	AutoloadClassmap = "classmap"
	AutoloadFiles    = "files"
)

// AutoloadResource is one mapping of an "autoload" or "autoload-dev" type.
// Namespaced types such as psr-4 map a namespace to a location; list types
// such as files carry a location only.
type AutoloadResource struct {
	Namespace string
	Location  string
	Type      string
	Dev       bool
}

// NewAutoloadResource returns a mapping of the given type. An empty
// namespace makes it a list entry.
func NewAutoloadResource(namespace, location, typ string) *AutoloadResource {
	return &AutoloadResource{Namespace: namespace, Location: location, Type: typ}
}

// NewPsr4AutoloadResource returns a psr-4 mapping of namespace to location.
func NewPsr4AutoloadResource(namespace, location string) *AutoloadResource {
	return NewAutoloadResource(namespace, location, AutoloadPsr4)
}

// HasNamespace reports whether the mapping is keyed by a namespace.
func (a *AutoloadResource) HasNamespace() bool {
	return a.Namespace != ""
}
