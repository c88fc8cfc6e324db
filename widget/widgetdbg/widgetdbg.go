/*
Package widgetdbg implements helpers to debug a styled widget tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 swordbreaker

*/
package widgetdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/swordbreaker/blade-bar/style"
	"github.com/swordbreaker/blade-bar/widget"
	tp "github.com/xlab/treeprint"
)

// Style groups shown when the client does not select any.
var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGColor,
}

// Tree renders a widget tree as an indented text tree,
// e.g. for t.Logf output:
//
//	window.main-window
//	└── box.main-container
//	    ├── label.title-label  "BladeBar"
//	    └── …
func Tree(root *widget.Node) string {
	if root == nil {
		return "<empty widget>"
	}
	p := tp.New()
	ppw(p, root)
	return p.String()
}

func ppw(p tp.Tree, w *widget.Node) {
	label := w.String()
	if text := w.Text(); text != "" {
		label += fmt.Sprintf("  %q", shorten(text))
	}
	if w.ChildCount() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for i := 0; i < w.ChildCount(); i++ {
		ppw(branch, w.ChildWidget(i))
	}
}

// StyleReport renders the computed styles of a single widget as a text
// tree, one branch per property group. A nil group list selects the
// default groups.
func StyleReport(w *widget.Node, groups []string) string {
	if w == nil {
		return "<empty widget>"
	}
	if groups == nil {
		groups = defaultGroups
	}
	p := tp.New()
	root := p.AddBranch(w.String())
	styles := w.Styles()
	if styles == nil {
		root.AddNode("not styled")
		return p.String()
	}
	for _, groupname := range groups {
		group := styles.Group(groupname)
		if group == nil {
			continue
		}
		branch := root.AddBranch(groupname)
		for _, kv := range group.Properties() {
			branch.AddNode(fmt.Sprintf("%s: %s", kv.Key, kv.Value))
		}
	}
	return p.String()
}

// ToGraphViz outputs a diagram for a styled widget tree. The diagram is
// in GraphViz (DOT) format. Clients provide the root widget, a Writer,
// and an optional list of style property groups; the diagram includes
// all styles belonging to one of the groups, defaulting to margins,
// padding, border, display and color.
func ToGraphViz(root *widget.Node, w io.Writer, styleGroups []string) error {
	gparams := graphParamsType{Fontname: "Helvetica", StyleGroups: styleGroups}
	if gparams.StyleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err := graphHeadTmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*widget.Node]string)
	if err := nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for debugging sessions. It writes a GraphViz image
// of the widget tree to a file in the current folder, choosing a unique
// file name, and renders it to SVG if the dot command is installed.
func Dotty(root *widget.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "widgets.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer tmpfile.Close()
	t.Logf("writing widget digraph to %s", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	if _, err := exec.LookPath("dot"); err != nil {
		t.Log("dot not installed, skipping SVG rendering")
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	StyleGroups []string
}

type node struct {
	W    *widget.Node
	Name string
	Text string
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func nodes(w *widget.Node, out io.Writer, dict map[*widget.Node]string,
	gparams *graphParamsType) error {
	//
	if err := widgetNode(w, out, dict, gparams); err != nil {
		return err
	}
	for i := 0; i < w.ChildCount(); i++ {
		ch := w.ChildWidget(i)
		if err := nodes(ch, out, dict, gparams); err != nil {
			return err
		}
		if err := widgetEdge(w, ch, out, dict); err != nil {
			return err
		}
	}
	return nil
}

func widgetNode(w *widget.Node, out io.Writer, dict map[*widget.Node]string,
	gparams *graphParamsType) error {
	//
	name := dict[w]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[w] = name
	}
	n := node{w, name, shorten(w.Text())}
	if err := widgetNodeTmpl.Execute(out, &n); err != nil {
		return err
	}
	return widgetStyles(w, out, dict, gparams)
}

func widgetStyles(w *widget.Node, out io.Writer, dict map[*widget.Node]string,
	gparams *graphParamsType) error {
	//
	styles := w.Styles()
	if styles == nil {
		return nil
	}
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := styles.Group(s)
		if pg == nil {
			continue
		}
		if err := styleGroupTmpl.Execute(out, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = pgEdgeTmpl.Execute(out, pgedge{dict[w], pg})
		} else {
			err = pgpgEdgeTmpl.Execute(out, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

func widgetEdge(w1, w2 *widget.Node, out io.Writer, dict map[*widget.Node]string) error {
	e := edge{node{W: w1, Name: dict[w1]}, node{W: w2, Name: dict[w2]}}
	return widgetEdgeTmpl.Execute(out, e)
}

func shorten(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > 12 {
		return text[:12] + "…"
	}
	return text
}

// --- Templates --------------------------------------------------------

var graphHeadTmpl = template.Must(template.New("widgets").Parse(
	`digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`))

var widgetNodeTmpl = template.Must(template.New("widget").Parse(
	`{{ if .Text }}
{{ .Name }}	[ label="{{ .W }}\n{{ .Text }}" shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .W.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`))

var widgetEdgeTmpl = template.Must(template.New("edge").Parse(
	`{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`))

var styleGroupTmpl = template.Must(template.New("stylegroup").Parse(
	`{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`))

var pgEdgeTmpl = template.Must(template.New("pgedge").Parse(
	`{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`))

var pgpgEdgeTmpl = template.Must(template.New("pgpgedge").Parse(
	`{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`))
