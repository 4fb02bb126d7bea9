package opnet

import "testing"

var matchNameTests = []struct {
	name     string
	patterns string
	match    bool
}{
	{"chars", "chars", true},
	{"chars", "props", false},
	{"chars", "*", true},
	{"chars", "ch*", true},
	{"chars", "*ars", true},
	{"chars", "props chars", true},
	{"chars", "* ^chars", false},
	{"props", "* ^chars", true},
	{"chars", "^chars chars", true},
	{"chars", "", false},
	{"chars", "ch[a-z]rs", true},
	{"chars", "[", false},
}

func TestMatchName(t *testing.T) {
	for _, test := range matchNameTests {
		if got := MatchName(test.name, test.patterns); got != test.match {
			t.Errorf("MatchName(%q, %q)=%v; expected %v", test.name, test.patterns, got, test.match)
		}
	}
}

func TestBundleList(t *testing.T) {
	d := NewDirector()
	a := d.ObjNode().CreateChild("a", KindNull)

	l := d.Bundles()
	b := l.NewBundle("chars")
	b.AddNode(a)
	b.AddNode(a)
	if len(b.Nodes()) != 1 {
		t.Errorf("duplicate AddNode grew the bundle to %d nodes", len(b.Nodes()))
	}

	if l.NewBundle("chars") != b {
		t.Errorf("NewBundle created a second bundle with the same name")
	}
	if l.Bundle("missing") != nil {
		t.Errorf("Bundle returned something for an unknown name")
	}
}
