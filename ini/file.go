package ini

import (
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/resource"
)

// Option configures a File.
type Option func(*File)

// WithSections writes top-level maps and slices as [section] blocks.
func WithSections(sections bool) Option {
	return func(f *File) {
		f.sections = sections
	}
}

// WithScannerMode sets how values are interpreted when content is parsed.
// The default is ScannerRaw.
func WithScannerMode(mode ScannerMode) Option {
	return func(f *File) {
		f.mode = mode
	}
}

// File is an INI document stored in a resource.File. The document lives in
// Data; the text form is produced on demand.
type File struct {
	*resource.File

	data     map[string]interface{}
	sections bool
	mode     ScannerMode
}

// New wraps file without reading it.
func New(file *resource.File, opts ...Option) *File {
	f := &File{File: file, data: map[string]interface{}{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open wraps file and loads the document when the file exists.
func Open(file *resource.File, opts ...Option) (*File, error) {
	f := New(file, opts...)
	if f.Exists() {
		if err := f.Load(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromFile parses the text held in file's content buffer. The file itself
// is not read.
func FromFile(file *resource.File, opts ...Option) (*File, error) {
	f := New(file, opts...)
	if err := f.SetContent(file.Content()); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads and parses the file.
func (f *File) Load() error {
	if err := f.File.Load(); err != nil {
		return err
	}
	return f.SetContent(f.File.Content())
}

// Save encodes the document and writes it to the file.
func (f *File) Save() error {
	text, err := f.Content()
	if err != nil {
		return err
	}
	f.File.SetContent(text)
	return f.File.Save()
}

// Content returns the document encoded as INI text.
func (f *File) Content() (string, error) {
	text, err := Marshal(f.data, f.sections)
	if err != nil {
		return "", errors.WithContext(err, "location", f.Location())
	}
	return text, nil
}

// SetContent parses text and replaces the document with it. Section headers
// are always honoured when parsing.
func (f *File) SetContent(text string) error {
	data, err := Unmarshal(text, f.mode)
	if err != nil {
		return errors.WithContext(err, "location", f.Location())
	}
	f.data = data
	return nil
}

// Data returns the document.
func (f *File) Data() map[string]interface{} {
	return f.data
}

// SetData replaces the document.
func (f *File) SetData(data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	f.data = data
}

// Sections reports whether top-level containers are written as sections.
func (f *File) Sections() bool {
	return f.sections
}

// SetSections changes how top-level containers are written.
func (f *File) SetSections(sections bool) {
	f.sections = sections
}

// SetScannerMode changes how values are interpreted by later parses.
func (f *File) SetScannerMode(mode ScannerMode) {
	f.mode = mode
}
