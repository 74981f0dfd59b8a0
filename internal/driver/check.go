package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"ripple/internal/asi"
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/lexer"
	"ripple/internal/parser"
	"ripple/internal/pipeline"
	"ripple/internal/source"
)

// CheckOptions configures a directory check.
type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int
	Termination    asi.Config
	// Cache may be nil (--no-cache).
	Cache *DiskCache
	// Sink may be nil; events are then dropped.
	Sink pipeline.ProgressSink
}

// CheckFileResult is the outcome for one file of a check run.
type CheckFileResult struct {
	Path       string
	FileID     source.FileID
	Bag        *diag.Bag
	Cached     bool
	Insertions int
	Elapsed    time.Duration
}

// ListSourceFiles returns the sorted list of .rp files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rp") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка.
	sort.Strings(files)
	return files, nil
}

// CheckDir runs lex+terminate+parse over every .rp file under dir, in
// parallel. Результаты идут по индексам: мьютекс не нужен, каждый worker
// пишет в свою ячейку.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckFileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// Заглушка, чтобы диагностике было куда указывать.
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	sink := opts.Sink
	if sink == nil {
		sink = pipeline.NopSink{}
	}
	for _, path := range files {
		sink.OnEvent(pipeline.Event{File: path, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]CheckFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			bag := diag.NewBag(opts.MaxDiagnostics)
			res := CheckFileResult{Path: path, Bag: bag}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileIDs[path]},
				})
				res.Elapsed = time.Since(started)
				results[i] = res
				sink.OnEvent(pipeline.Event{File: path, Status: pipeline.StatusError, Err: loadErr})
				return nil
			}

			fileID := fileIDs[path]
			res.FileID = fileID
			file := fileSet.Get(fileID)

			// Кэш: чистый файл с тем же содержимым не перечитываем.
			var payload DiskPayload
			if hit, err := opts.Cache.Get(file.Hash, opts.Termination.Enabled, &payload); err == nil && hit && payload.Clean {
				res.Cached = true
				res.Insertions = payload.Insertions
				res.Elapsed = time.Since(started)
				results[i] = res
				sink.OnEvent(pipeline.Event{File: path, Status: pipeline.StatusCached, Elapsed: res.Elapsed})
				return nil
			}

			res.Insertions = checkFile(fileSet, file, bag, opts, sink, path)

			if !bag.HasErrors() {
				// Кэш — ускорение, не корректность; ошибку записи глотаем.
				_ = opts.Cache.Put(file.Hash, newPayload(opts.Termination.Enabled, true, res.Insertions))
			}

			res.Elapsed = time.Since(started)
			results[i] = res

			status := pipeline.StatusDone
			if bag.HasErrors() {
				status = pipeline.StatusError
			}
			sink.OnEvent(pipeline.Event{File: path, Status: status, Elapsed: res.Elapsed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// checkFile runs the three stages over one loaded file and reports stage
// progress. Returns the number of inserted terminators.
func checkFile(fileSet *source.FileSet, file *source.File, bag *diag.Bag, opts CheckOptions, sink pipeline.ProgressSink, path string) int {
	rep := &diag.BagReporter{Bag: bag}

	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageLex, Status: pipeline.StatusWorking})
	raw := lexer.New(file, lexer.Options{Reporter: rep}).Tokens()

	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageTerminate, Status: pipeline.StatusWorking})
	oracle := parser.NewProbe(parser.DefaultProbeOptions())
	terminated := asi.Run(file, raw, oracle, rep, opts.Termination)

	insertions := 0
	for _, d := range terminated.Decisions {
		if d.Action == asi.ActionInsert {
			insertions++
		}
	}

	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		maxErrors = 0
	}
	builder := ast.NewBuilder(ast.Hints{})
	parser.ParseTokens(fileSet, terminated.Tokens, builder, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	})

	return insertions
}
