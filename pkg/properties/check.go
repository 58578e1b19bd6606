package properties

import (
	"fmt"

	"github.com/joshuapare/propkit/internal/proptext"
	"github.com/joshuapare/propkit/pkg/types"
)

// Check verifies the internal consistency of f and returns the first
// violation found, wrapping types.ErrInconsistent. A File only ever
// mutated through its methods always passes.
func (f *File) Check() error {
	for key, ix := range f.indices {
		if len(ix) == 0 {
			return inconsistent("key %q maps to no lines", key)
		}
		for n, i := range ix {
			if n > 0 && ix[n-1] >= i {
				return inconsistent("indices of key %q are not ascending", key)
			}
			line, ok := f.lines[i]
			if !ok {
				return inconsistent("key %q maps to missing line %d", key, i)
			}
			if !line.IsEntry() {
				return inconsistent("key %q maps to %s line %d", key, line.Kind, i)
			}
			if line.Key != key {
				return inconsistent("key %q maps to line %d defining %q", key, i, line.Key)
			}
		}
	}

	if len(f.order) != len(f.lines) {
		return inconsistent("%d ordered lines but %d stored", len(f.order), len(f.lines))
	}
	for n, i := range f.order {
		if n > 0 && f.order[n-1] >= i {
			return inconsistent("line indices out of order at %d", i)
		}
		line, ok := f.lines[i]
		if !ok {
			return inconsistent("ordered line %d is not stored", i)
		}
		if err := checkSource(line); err != nil {
			return inconsistent("line %d: %v", i, err)
		}
		if !line.IsEntry() {
			continue
		}
		ix, ok := f.indices[line.Key]
		if !ok {
			return inconsistent("line %d defines %q which is missing from the key map", i, line.Key)
		}
		found := false
		for _, j := range ix {
			if j == i {
				found = true
				break
			}
		}
		if !found {
			return inconsistent("line %d is not registered under key %q", i, line.Key)
		}
	}
	return nil
}

// checkSource verifies that a line's source text parses back to the line.
func checkSource(line types.Line) error {
	if !line.Verbatim() {
		if !line.IsEntry() {
			return fmt.Errorf("%s line has no source text", line.Kind)
		}
		return nil
	}
	parsed, err := proptext.ParseString(line.Source)
	if err != nil {
		return fmt.Errorf("source does not parse: %w", err)
	}
	if len(parsed) != 1 || parsed[0] != line {
		return fmt.Errorf("source %q does not parse to itself", line.Source)
	}
	return nil
}

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{types.ErrInconsistent}, args...)...)
}
