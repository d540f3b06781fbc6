// Package dom implements the fail-soft HTML tokenizer and the DOM forest
// it produces.
package dom

// Tag is the closed set of recognized element tags, plus Unknown for
// anything else.
type Tag int

const (
	TagDiv Tag = iota
	TagP
	TagH1
	TagH2
	TagH3
	TagUL
	TagOL
	TagLI
	TagTable
	TagTR
	TagTD
	TagTH
	TagSpan
	TagImg
	TagBody
	TagHTML
	TagHead
	TagUnknown
)

var tagNames = map[string]Tag{
	"div":   TagDiv,
	"p":     TagP,
	"h1":    TagH1,
	"h2":    TagH2,
	"h3":    TagH3,
	"ul":    TagUL,
	"ol":    TagOL,
	"li":    TagLI,
	"table": TagTable,
	"tr":    TagTR,
	"td":    TagTD,
	"th":    TagTH,
	"span":  TagSpan,
	"img":   TagImg,
	"body":  TagBody,
	"html":  TagHTML,
	"head":  TagHead,
}

// ParseTag resolves a lowercase tag name to a Tag, returning TagUnknown
// when it is not one of the closed set (the parser keeps the name in
// Element.Name).
func ParseTag(name string) Tag {
	if t, ok := tagNames[name]; ok {
		return t
	}
	return TagUnknown
}

// Node is either a Text leaf or an *Element.
type Node interface {
	isNode()
}

// Text is a verbatim text leaf; entities are already decoded.
type Text string

func (Text) isNode() {}

// Element is a tag, its lowercased attribute map, and its ordered
// children. Invariant: an Element with Tag == TagImg has no children.
type Element struct {
	Tag      Tag
	Name     string // original source tag name, lowercased; meaningful when Tag == TagUnknown
	Attrs    map[string]string
	Children []Node
}

func (*Element) isNode() {}

// Attr returns an attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// Class returns the whitespace-separated tokens of the class attribute,
// in document order.
func (e *Element) Class() []string {
	raw, ok := e.Attrs["class"]
	if !ok {
		return nil
	}
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			flush()
		} else {
			cur = append(cur, r)
		}
	}
	flush()
	return tokens
}

// Document is the parsed forest: an ordered sequence of top-level nodes.
type Document struct {
	Nodes []Node
}

// BodyChildren returns the children of the first <body> element found
// anywhere in the forest (searched depth-first), or the whole forest if
// no <body> is present. Used by the pipeline orchestrator's generate
// entry point.
func (d *Document) BodyChildren() []Node {
	if body := findBody(d.Nodes); body != nil {
		return body.Children
	}
	return d.Nodes
}

func findBody(nodes []Node) *Element {
	for _, n := range nodes {
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if el.Tag == TagBody {
			return el
		}
		if found := findBody(el.Children); found != nil {
			return found
		}
	}
	return nil
}
