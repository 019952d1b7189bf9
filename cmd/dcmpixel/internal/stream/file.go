// Package stream adapts *os.File to the external.StreamReader/StreamWriter
// interfaces the core's collaborators are specified against (DICOM PS3.3
// §6): a sequential byte stream with an explicit Terminate distinct from
// EOF, rather than a bare io.Reader/io.Writer.
package stream

import "os"

// File wraps an *os.File as both an external.StreamReader and an
// external.StreamWriter.
type File struct {
	f *os.File
}

// OpenRead opens path for reading.
func OpenRead(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Create truncates (or creates) path for writing.
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// Read implements external.StreamReader.
func (s *File) Read(p []byte) (int, error) { return s.f.Read(p) }

// Write implements external.StreamWriter.
func (s *File) Write(p []byte) (int, error) { return s.f.Write(p) }

// Terminate closes the underlying file, independent of whether EOF was
// reached.
func (s *File) Terminate() error { return s.f.Close() }
