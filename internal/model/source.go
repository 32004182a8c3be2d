package model

// Path represents a file system path.
type Path string

// File represents a PHP source file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is a discovered PHP file that is a candidate for rewriting.
type Source struct {
	Origin *File
}
