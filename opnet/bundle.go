package opnet

import (
	"path"
	"strings"
)

// Bundle is a named group of nodes.
type Bundle struct {
	name  string
	nodes []*Node
}

func (b *Bundle) Name() string   { return b.name }
func (b *Bundle) Nodes() []*Node { return b.nodes }

func (b *Bundle) AddNode(n *Node) {
	for _, e := range b.nodes {
		if e == n {
			return
		}
	}
	b.nodes = append(b.nodes, n)
}

type BundleList struct {
	bundles []*Bundle
}

func (l *BundleList) Bundles() []*Bundle { return l.bundles }

func (l *BundleList) Bundle(name string) *Bundle {
	for _, b := range l.bundles {
		if b.name == name {
			return b
		}
	}
	return nil
}

func (l *BundleList) NewBundle(name string) *Bundle {
	if b := l.Bundle(name); b != nil {
		return b
	}
	b := &Bundle{name: name}
	l.bundles = append(l.bundles, b)
	return b
}

// MatchName implements the host multi-match rule: a space-separated
// list of glob patterns, with a leading ^ excluding matches.
func MatchName(name, patterns string) bool {
	matched := false
	for _, pattern := range strings.Fields(patterns) {
		exclude := false
		if strings.HasPrefix(pattern, "^") {
			exclude = true
			pattern = pattern[1:]
		}
		ok, err := path.Match(pattern, name)
		if err != nil || !ok {
			continue
		}
		if exclude {
			matched = false
		} else {
			matched = true
		}
	}
	return matched
}
