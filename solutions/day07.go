package solutions

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

const (
	diskSize     = 70_000_000
	requiredFree = 30_000_000
	smallDirMax  = 100_000
)

// dirID indexes fsTree.dirs. The root is always 0.
type dirID int

const noParent dirID = -1

type dirNode struct {
	parent dirID
	dirs   map[string]dirID
	files  map[string]int
	size   int // aggregate size, set by fsTree.computeSizes
}

// fsTree is a directory tree stored as an arena; parents are referenced
// by index rather than pointer.
type fsTree struct {
	dirs []dirNode
}

func newFSTree() *fsTree {
	t := &fsTree{}
	t.mkdir(noParent)
	return t
}

func (t *fsTree) mkdir(parent dirID) dirID {
	t.dirs = append(t.dirs, dirNode{
		parent: parent,
		dirs:   map[string]dirID{},
		files:  map[string]int{},
	})
	return dirID(len(t.dirs) - 1)
}

func (t *fsTree) addDir(cwd dirID, name string) error {
	if t.exists(cwd, name) {
		return aoc.Logicf("entry %q already exists", name)
	}
	id := t.mkdir(cwd)
	t.dirs[cwd].dirs[name] = id
	return nil
}

func (t *fsTree) addFile(cwd dirID, name string, size int) error {
	if t.exists(cwd, name) {
		return aoc.Logicf("entry %q already exists", name)
	}
	t.dirs[cwd].files[name] = size
	return nil
}

func (t *fsTree) exists(cwd dirID, name string) bool {
	d := t.dirs[cwd]
	_, isDir := d.dirs[name]
	_, isFile := d.files[name]
	return isDir || isFile
}

// computeSizes fills in the aggregate size of every directory. Children
// are always allocated after their parent, so walking the arena backwards
// visits every child before its parent.
func (t *fsTree) computeSizes() {
	for i := len(t.dirs) - 1; i >= 0; i-- {
		d := &t.dirs[i]
		for _, n := range d.files {
			d.size += n
		}
		for _, c := range d.dirs {
			d.size += t.dirs[c].size
		}
	}
}

// parseTranscript replays a terminal session into a directory tree with
// sizes computed.
func parseTranscript(input string) (*fsTree, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	t := newFSTree()
	cwd := dirID(0)
	for i, line := range lines {
		if err := t.apply(&cwd, line); err != nil {
			return nil, aoc.AtLine(i+1, err)
		}
	}
	t.computeSizes()
	return t, nil
}

func (t *fsTree) apply(cwd *dirID, line string) error {
	if cmd, ok := strings.CutPrefix(line, "$ "); ok {
		switch {
		case cmd == "ls":
			return nil
		case cmd == "cd /":
			*cwd = 0
		case cmd == "cd ..":
			if p := t.dirs[*cwd].parent; p != noParent {
				*cwd = p
			}
		case strings.HasPrefix(cmd, "cd "):
			name := strings.TrimPrefix(cmd, "cd ")
			id, ok := t.dirs[*cwd].dirs[name]
			if !ok {
				return aoc.Logicf("no directory %q", name)
			}
			*cwd = id
		default:
			return aoc.Parsef("unrecognized command %q", cmd)
		}
		return nil
	}

	a, name, err := aoc.Cut(line, " ")
	if err != nil {
		return err
	}
	if name == "" {
		return aoc.Parsef("missing name in %q", line)
	}
	if a == "dir" {
		return t.addDir(*cwd, name)
	}
	size, err := aoc.Int(a)
	if err != nil {
		return err
	}
	if size < 0 {
		return aoc.Parsef("negative file size %d", size)
	}
	return t.addFile(*cwd, name, size)
}

func (s *Solver) D7p1(input string) (string, error) {
	t, err := parseTranscript(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, d := range t.dirs {
		if d.size < smallDirMax {
			sum += d.size
		}
	}
	return strconv.Itoa(sum), nil
}

func (s *Solver) D7p2(input string) (string, error) {
	t, err := parseTranscript(input)
	if err != nil {
		return "", err
	}
	used := t.dirs[0].size
	needed := requiredFree - (diskSize - used)
	s.log.Debug("disk usage",
		zap.String("used", humanize.Comma(int64(used))),
		zap.String("needed", humanize.Comma(int64(needed))))
	if needed <= 0 {
		return "0", nil
	}
	best := -1
	for _, d := range t.dirs {
		if d.size >= needed && (best == -1 || d.size < best) {
			best = d.size
		}
	}
	if best == -1 {
		return "", aoc.Logicf("no directory frees %d", needed)
	}
	return strconv.Itoa(best), nil
}
