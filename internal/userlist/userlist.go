// Package userlist reads and writes line-delimited username files.
package userlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Set is an unordered collection of unique usernames
type Set map[string]struct{}

// NewSet builds a set from names, ignoring blanks and surrounding whitespace
func NewSet(names ...string) Set {
	set := make(Set, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts name after trimming it. Blank names are ignored.
func (s Set) Add(name string) {
	if name = strings.TrimSpace(name); name != "" {
		s[name] = struct{}{}
	}
}

// Contains reports whether name is in the set
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of usernames
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the usernames in lexicographic ascending order
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Difference returns the names in s that are not in other
func (s Set) Difference(other Set) Set {
	result := make(Set, len(s))
	for name := range s {
		if !other.Contains(name) {
			result[name] = struct{}{}
		}
	}
	return result
}

// Union returns the names in either set
func (s Set) Union(other Set) Set {
	result := make(Set, len(s)+len(other))
	for name := range s {
		result[name] = struct{}{}
	}
	for name := range other {
		result[name] = struct{}{}
	}
	return result
}

// ReadLines returns the non-blank trimmed lines of r in order, keeping the
// first occurrence of each.
func ReadLines(r io.Reader) ([]string, error) {
	seen := make(Set)
	var names []string

	// lines may exceed bufio.Scanner's token limit
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if name := strings.TrimSpace(line); name != "" && !seen.Contains(name) {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// LoadList reads path as an ordered list of unique usernames. A missing
// file is an error.
func LoadList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	names, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return names, nil
}

// LoadSet reads path as a set of usernames. A missing file is logged and
// yields an empty set.
func LoadSet(path string) (Set, error) {
	names, err := LoadList(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", path).Msg("Username file not found, starting with an empty set")
		return make(Set), nil
	}
	if err != nil {
		return nil, err
	}
	return NewSet(names...), nil
}

// Write replaces path with the sorted usernames of set, one per line.
func Write(path string, set Set) error {
	return writeFile(path, set, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// Append adds the sorted usernames of set to the end of path.
func Append(path string, set Set) error {
	return writeFile(path, set, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func writeFile(path string, set Set, flag int) error {
	file, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	w := bufio.NewWriter(file)
	for _, name := range set.Sorted() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			file.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("count", set.Len()).Msg("Saved unique users")
	return nil
}
