// Package dataset loads the food-image dataset: the class-name dictionary,
// the per-split image directories, and the preprocessing that turns both into
// training-ready samples.
package dataset

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Classes is the bidirectional mapping between class names and their integer
// indexes, built once from a class-name file and read-only afterward. Indexes
// are assigned by line order, 0-based.
type Classes struct {
	names  []string
	byName map[string]int
}

// LoadClasses reads a newline-delimited class-name file. Blank lines are
// skipped; a duplicated name keeps its earliest index in the reverse mapping.
func LoadClasses(path string) (*Classes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open class file %q", path)
	}
	defer f.Close()

	c := &Classes{byName: make(map[string]int)}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}

		if _, ok := c.byName[name]; !ok {
			c.byName[name] = len(c.names)
		}
		c.names = append(c.names, name)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Scanning class file %q failed", path)
	}

	if len(c.names) == 0 {
		return nil, errors.Errorf("Class file %q holds no classes", path)
	}

	return c, nil
}

// Len returns the number of classes.
func (c *Classes) Len() int {
	return len(c.names)
}

// Index returns the index of the given class name.
func (c *Classes) Index(name string) (int, error) {
	i, ok := c.byName[name]
	if !ok {
		return -1, errors.Errorf("No class named %q", name)
	}

	return i, nil
}

// Name returns the class name at the given index.
func (c *Classes) Name(i int) (string, error) {
	if i < 0 || i >= len(c.names) {
		return "", errors.Errorf("Class index %d out of range [0, %d)", i, len(c.names))
	}

	return c.names[i], nil
}

// Names returns a copy of all class names, in index order.
func (c *Classes) Names() []string {
	ns := make([]string, len(c.names))
	copy(ns, c.names)
	return ns
}
