package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/bnrepo/pkg/dag"
)

func sprinkler(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New(nil)
	for _, id := range []string{"Rain", "Sprinkler", "GrassWet"} {
		if err := g.AddNode(dag.Node{ID: id, Meta: dag.Metadata{"states": 2}}); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{{"Rain", "Sprinkler"}, {"Rain", "GrassWet"}, {"Sprinkler", "GrassWet"}} {
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AssignLayers(); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sprinkler(t), Options{Name: "sprinkler"})

	for _, want := range []string{
		"digraph G {",
		`label="sprinkler";`,
		`"Rain" [label="Rain", fillcolor=lightgrey];`,
		`"Sprinkler" [label="Sprinkler"];`,
		`"GrassWet" [label="GrassWet", peripheries=2];`,
		`{ rank=same; "Rain"; }`,
		`{ rank=same; "GrassWet"; }`,
		`"Rain" -> "Sprinkler";`,
		`"Sprinkler" -> "GrassWet";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}

	if strings.Index(dot, `"Rain" -> "Sprinkler"`) > strings.Index(dot, `"Rain" -> "GrassWet"`) {
		t.Error("edges not in insertion order")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sprinkler(t), Options{Detailed: true})

	if !strings.Contains(dot, `label="GrassWet\nrow: 2\nparents: 2\nchildren: 0\nstates: 2"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if strings.Contains(dot, "labelloc") {
		t.Error("graph label written without a name")
	}
}

func TestToDOTSingleRow(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "only"})

	dot := ToDOT(g, Options{})
	if strings.Contains(dot, "rank=same") {
		t.Errorf("single-row graph should not pin ranks:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s\nwant %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should pass through")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering in short mode")
	}

	svg, err := RenderSVG(context.Background(), ToDOT(sprinkler(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "GrassWet") {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}
}

func TestToDOTNameFromMetadata(t *testing.T) {
	g := dag.New(dag.Metadata{"name": "asia"})
	_ = g.AddNode(dag.Node{ID: "Tub"})

	if dot := ToDOT(g, Options{}); !strings.Contains(dot, `label="asia";`) {
		t.Errorf("graph metadata name not used:\n%s", dot)
	}
	if dot := ToDOT(g, Options{Name: "override"}); !strings.Contains(dot, `label="override";`) {
		t.Errorf("Options.Name should take precedence:\n%s", dot)
	}
}
