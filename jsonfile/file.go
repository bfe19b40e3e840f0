package jsonfile

import (
	"github.com/medusaphp/filesystem/errors"
	"github.com/medusaphp/filesystem/resource"
)

// File is a JSON document stored in a resource.File.
type File struct {
	*resource.File

	data *Object
}

// New wraps file without reading it.
func New(file *resource.File) *File {
	return &File{File: file, data: NewObject()}
}

// Open wraps file and loads the document when the file exists.
func Open(file *resource.File) (*File, error) {
	f := New(file)
	if f.Exists() {
		if err := f.Load(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromFile parses the text held in file's content buffer. The file itself
// is not read.
func FromFile(file *resource.File) (*File, error) {
	f := New(file)
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

// Save writes the document to the file.
func (f *File) Save() error {
	return f.SaveDocument(f.data)
}

// SaveDocument encodes v and writes it to the file in place of the
// document.
func (f *File) SaveDocument(v interface{}) error {
	text, err := Encode(v)
	if err != nil {
		return errors.WithContext(err, "location", f.Location())
	}
	f.File.SetContent(text)
	return f.File.Save()
}

// Content returns the document encoded as JSON.
func (f *File) Content() (string, error) {
	return f.JSON()
}

// JSON returns the document encoded as JSON.
func (f *File) JSON() (string, error) {
	text, err := Encode(f.data)
	if err != nil {
		return "", errors.WithContext(err, "location", f.Location())
	}
	return text, nil
}

// SetContent parses text and replaces the document with it.
func (f *File) SetContent(text string) error {
	data, err := Decode(text)
	if err != nil {
		return errors.WithContext(err, "location", f.Location())
	}
	f.data = data
	return nil
}

// Data returns the document.
func (f *File) Data() *Object {
	return f.data
}

// SetData replaces the document.
func (f *File) SetData(data *Object) {
	if data == nil {
		data = NewObject()
	}
	f.data = data
}
