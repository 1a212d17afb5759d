package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rcl/internal/diag"
	"rcl/internal/project"
	"rcl/internal/source"
)

// FileExt is the extension the batch commands look for.
const FileExt = ".rcl"

// CheckFileResult is the verdict for one file: either OK with the node
// count, or the first error with its position.
type CheckFileResult struct {
	Path      string
	OK        bool
	FromCache bool
	NodeCount uint32
	Code      diag.Code
	Message   string
	Pos       source.LineCol
}

// CheckOpts configures a batch check run.
type CheckOpts struct {
	MaxDepth       uint
	MaxDiagnostics int
	Jobs           int                   // 0 means GOMAXPROCS
	Cache          *DiskCache            // nil disables caching
	OnFile         func(CheckFileResult) // called per finished file; must be fast
}

// ListFiles expands the given paths: files pass through, directories are
// walked for *.rcl files. The result is sorted for deterministic order.
func ListFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, FileExt) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// CheckMany parses every file in parallel and reports one verdict per
// file, in input order. Unchanged files hit the disk cache and skip the
// parse entirely.
func CheckMany(ctx context.Context, paths []string, opts CheckOpts) ([]CheckFileResult, error) {
	files, err := ListFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Index per goroutine is unique, no mutex needed.
	results := make([]CheckFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = checkOne(path, opts)
			if opts.OnFile != nil {
				opts.OnFile(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func checkOne(path string, opts CheckOpts) CheckFileResult {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return CheckFileResult{
			Path:    path,
			Code:    diag.IOLoadFileError,
			Message: "failed to load file: " + err.Error(),
		}
	}
	file := fs.Get(fileID)
	key := project.Digest(file.Hash)

	if opts.Cache != nil {
		var cached DiskPayload
		if ok, err := opts.Cache.Get(key, &cached); err == nil && ok && cached.Path == path {
			return CheckFileResult{
				Path:      path,
				OK:        cached.OK,
				FromCache: true,
				NodeCount: cached.NodeCount,
				Code:      diag.Code(cached.ErrCode),
				Message:   cached.ErrMsg,
				Pos:       source.LineCol{Line: cached.ErrLine, Col: cached.ErrCol},
			}
		}
	}

	parsed := parseFile(fs, fileID, ParseOpts{
		MaxDiagnostics: opts.MaxDiagnostics,
		MaxDepth:       opts.MaxDepth,
	})

	res := CheckFileResult{Path: path}
	if parsed.Err != nil {
		res.Code = parsed.Err.Code
		res.Message = parsed.Err.Msg
		res.Pos = parsed.Err.Pos
	} else {
		res.OK = true
		res.NodeCount = parsed.Tree.Len()
	}

	if opts.Cache != nil {
		payload := &DiskPayload{
			Schema:      diskCacheSchemaVersion,
			Path:        path,
			ContentHash: key,
			OK:          res.OK,
			NodeCount:   res.NodeCount,
			ErrCode:     uint16(res.Code),
			ErrMsg:      res.Message,
			ErrLine:     res.Pos.Line,
			ErrCol:      res.Pos.Col,
		}
		// Best effort: a failed cache write never fails the check.
		_ = opts.Cache.Put(key, payload)
	}

	return res
}
