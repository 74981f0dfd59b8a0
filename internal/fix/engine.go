package fix

// todo: интеграция с git: создавать .bak только для незатрекинных файлов.

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"ripple/internal/diag"
	"ripple/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
	ApplyModeID
)

// ApplyOptions configures how fixes are selected and written out.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// Backup writes a `<path>.bak` copy of each modified file before
	// overwriting it.
	Backup bool
	// DryRun applies edits in memory and reports changes without writing.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts,
// and applies them to the files of fs.
//
// Кандидаты валидируются против ИСХОДНОГО содержимого файла (guard-текст,
// границы спанов, конфликты между правками), и только потом все выжившие
// правки применяются одним проходом от конца файла к началу. Сдвиги
// смещений поэтому не нужны.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, applySkips, changes, err := applyCandidates(fs, selected, opts)
	result.Applied = append(result.Applied, applied...)
	result.Skipped = append(result.Skipped, applySkips...)
	result.FileChanges = append(result.FileChanges, changes...)

	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// gatherCandidates builds the candidate list from diagnostics. Fixes without
// edits are dropped; fixes without an ID get one synthesized from the
// diagnostic position so selection by ID stays possible.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates sorts candidates in-place into a deterministic order:
// file, span start, span end, insertion order, code, preference, id, title.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		if candidates[i].fix.IsPreferred != candidates[j].fix.IsPreferred {
			return candidates[i].fix.IsPreferred
		}
		if candidates[i].fix.ID != candidates[j].fix.ID {
			return candidates[i].fix.ID < candidates[j].fix.ID
		}
		return candidates[i].fix.Title < candidates[j].fix.Title
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		for _, cand := range candidates {
			if cand.fix.ID == opts.TargetID {
				return []candidate{cand}, nil
			}
		}
		return nil, []SkippedFix{{
			ID:     opts.TargetID,
			Reason: "fix id not found",
		}}
	case ApplyModeAll:
		return candidates, nil
	case ApplyModeOnce:
		for i := range candidates {
			if candidates[i].fix.IsPreferred {
				return candidates[i : i+1], nil
			}
		}
		return candidates[:1], nil
	default:
		return nil, nil
	}
}

// applyCandidates validates every selected candidate against the original
// file content, drops the ones that cannot apply, then rewrites each dirty
// file in a single pass.
func applyCandidates(fs *source.FileSet, selected []candidate, opts ApplyOptions) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	applied := make([]AppliedFix, 0, len(selected))
	skipped := make([]SkippedFix, 0)

	// Принятые правки по файлам; используются и для детекта конфликтов.
	accepted := make(map[source.FileID][]diag.FixEdit)
	baseDir := fs.BaseDir()

	for _, cand := range selected {
		reason := validateCandidate(fs, cand, accepted)
		if reason != "" {
			skipped = append(skipped, SkippedFix{
				ID:     cand.fix.ID,
				Title:  cand.fix.Title,
				Reason: reason,
			})
			continue
		}
		for _, edit := range cand.fix.Edits {
			accepted[edit.Span.File] = append(accepted[edit.Span.File], edit)
		}
		applied = append(applied, AppliedFix{
			ID:          cand.fix.ID,
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: formatFilePath(fs, cand.diag.Primary.File),
			EditCount:   len(cand.fix.Edits),
		})
	}

	if len(applied) == 0 {
		return applied, skipped, nil, nil
	}

	fileChanges := make([]FileChange, 0, len(accepted))
	for fileID, edits := range accepted {
		file := fs.Get(fileID)
		buf := rewrite(file.Content, edits)

		if !opts.DryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if opts.Backup {
				if err := os.WriteFile(file.Path+".bak", file.Content, mode); err != nil {
					return applied, skipped, fileChanges, fmt.Errorf("backup %s: %w", file.Path, err)
				}
			}
			if err := os.WriteFile(file.Path, buf, mode); err != nil {
				return applied, skipped, fileChanges, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}

		fileChanges = append(fileChanges, FileChange{
			Path:      file.FormatPath("relative", baseDir),
			EditCount: len(edits),
		})
	}

	sort.SliceStable(fileChanges, func(i, j int) bool {
		return fileChanges[i].Path < fileChanges[j].Path
	})

	return applied, skipped, fileChanges, nil
}

// validateCandidate checks a candidate against original content and already
// accepted edits. Returns an empty string when the candidate can apply.
func validateCandidate(fs *source.FileSet, cand candidate, accepted map[source.FileID][]diag.FixEdit) string {
	for _, edit := range cand.fix.Edits {
		file := fs.Get(edit.Span.File)
		if file == nil {
			return "edit targets unknown file"
		}
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		start, end := int(edit.Span.Start), int(edit.Span.End)
		if start < 0 || end < start || end > len(file.Content) {
			return "edit span out of range"
		}
		if edit.OldText != "" && string(file.Content[start:end]) != edit.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted[edit.Span.File] {
			if spansConflict(prev, edit) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.FormatPath("auto", fs.BaseDir()))
			}
		}
	}
	return ""
}

// rewrite applies edits to content, последняя правка первой, чтобы смещения
// не плыли.
func rewrite(content []byte, edits []diag.FixEdit) []byte {
	sorted := append([]diag.FixEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.Start == sorted[j].Span.Start {
			return sorted[i].Span.End > sorted[j].Span.End
		}
		return sorted[i].Span.Start > sorted[j].Span.Start
	})

	buf := append([]byte(nil), content...)
	for _, edit := range sorted {
		start, end := int(edit.Span.Start), int(edit.Span.End)
		suffix := append([]byte(nil), buf[end:]...)
		buf = append(append(buf[:start], []byte(edit.NewText)...), suffix...)
	}
	return buf
}

// spansConflict reports whether two edits' spans overlap. Spans are half-open
// [Start, End). Two zero-length edits never conflict; a zero-length edit
// conflicts with a span that strictly contains its position.
func spansConflict(a, b diag.FixEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	if fs == nil {
		return ""
	}
	file := fs.Get(fileID)
	if file == nil {
		return ""
	}
	return file.FormatPath("auto", fs.BaseDir())
}
