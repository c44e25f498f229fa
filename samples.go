package aoc

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

//go:embed samples/*.txt
var sampleFS embed.FS

// Sample is a worked example from a puzzle description.
type Sample struct {
	Input string
	Want  string
}

// SampleKey identifies the sample for one puzzle part.
type SampleKey struct {
	Day, Part int
}

var (
	sampleRx     = regexp.MustCompile(`(?s)^want=([^\n]*)\n(?:\n(.*))?$`)
	sampleNameRx = regexp.MustCompile(`^d(\d+)p(\d+)\.txt$`)
)

// parseSample parses the contents of a sample file: a want= line, then
// optionally a blank line and the literal input. A quoted want value is
// unquoted so it can carry newlines.
func parseSample(text string) (Sample, bool) {
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	s := Sample{Want: m[1], Input: m[2]}
	if strings.HasPrefix(s.Want, `"`) {
		w, err := strconv.Unquote(s.Want)
		if err != nil {
			return Sample{}, false
		}
		s.Want = w
	}
	return s, true
}

// LoadSamples returns every embedded sample. A sample without input
// reuses the input of the previous part of the same day.
func LoadSamples() (map[SampleKey]Sample, error) {
	return loadSamples(sampleFS, "samples")
}

func loadSamples(fsys fs.FS, dir string) (map[SampleKey]Sample, error) {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, Errorf(IO, "reading samples: %w", err)
	}
	var keys []SampleKey
	texts := map[SampleKey]string{}
	for _, e := range ents {
		m := sampleNameRx.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		part, _ := strconv.Atoi(m[2])
		b, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, Errorf(IO, "reading sample %s: %w", e.Name(), err)
		}
		k := SampleKey{day, part}
		keys = append(keys, k)
		texts[k] = string(b)
	}
	slices.SortFunc(keys, func(a, b SampleKey) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})

	samples := make(map[SampleKey]Sample, len(keys))
	var last SampleKey
	for _, k := range keys {
		s, ok := parseSample(texts[k])
		if !ok {
			return nil, Parsef("malformed sample d%dp%d", k.Day, k.Part)
		}
		if s.Input == "" {
			if prev, ok := samples[last]; ok && last.Day == k.Day {
				s.Input = prev.Input
			}
		}
		samples[k] = s
		last = k
	}
	return samples, nil
}

// LookupSample returns the sample for day and part.
func LookupSample(day, part int) (Sample, error) {
	samples, err := LoadSamples()
	if err != nil {
		return Sample{}, err
	}
	s, ok := samples[SampleKey{day, part}]
	if !ok {
		return Sample{}, Errorf(InvalidArgument, "no sample for day %d part %d", day, part)
	}
	return s, nil
}

// Check runs fn over s and compares the result with s.Want.
func (s Sample) Check(fn SolveFunc) (got string, err error) {
	got, err = fn(s.Input)
	if err != nil {
		return "", err
	}
	if got != s.Want {
		return got, fmt.Errorf("got %q; want %q", got, s.Want)
	}
	return got, nil
}
