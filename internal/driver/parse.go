package driver

import (
	"rcl/internal/cst"
	"rcl/internal/diag"
	"rcl/internal/parser"
	"rcl/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Tree
	Err     *parser.Error
	Bag     *diag.Bag
}

// ParseOpts carries the knobs shared by the parse-based commands.
type ParseOpts struct {
	MaxDiagnostics int
	MaxDepth       uint
}

// Parse loads a file and parses it to a CST. Parsing is fail-fast, so
// the bag holds at most one diagnostic, mirrored from Err.
func Parse(path string, opts ParseOpts) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, opts), nil
}

// ParseBytes parses in-memory content under a virtual file name.
func ParseBytes(name string, content []byte, opts ParseOpts) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, opts)
}

func parseFile(fs *source.FileSet, fileID source.FileID, opts ParseOpts) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	result := parser.ParseFile(fs, fileID, parser.Options{
		MaxDepth: opts.MaxDepth,
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    result.Tree,
		Err:     result.Err,
		Bag:     bag,
	}
}
