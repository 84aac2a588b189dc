package markup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/beevik/etree"

	"dtc/exec"
	"dtc/geom"
	"dtc/syntax"
)

// Parse reads an XML template. The document root must be <doc>; its content
// is the vocabulary of structural elements understood by this frontend.
//
// Malformed XML and malformed attribute values fail the parse. Unknown
// elements parse fine and surface as warnings when the template executes.
func Parse(data []byte) (*Doc, error) {
	xml := etree.NewDocument()
	if err := xml.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse template: %w", err)
	}
	root := xml.Root()
	if root == nil {
		return nil, fmt.Errorf("template has no root element")
	}
	if root.Tag != "doc" {
		return nil, fmt.Errorf("template root must be <doc>, got <%s>", root.Tag)
	}

	p := &parser{}
	children, err := p.parseChildren(root)
	if err != nil {
		return nil, err
	}
	return &Doc{children: children}, nil
}

// parser numbers elements in document order. etree does not retain byte
// offsets, so spans index elements rather than input bytes - good enough to
// point a diagnostic at the offending element.
type parser struct {
	ord int
}

func (p *parser) span() syntax.Span {
	p.ord++
	return syntax.NewSpan(p.ord, p.ord+1)
}

func (p *parser) parseChildren(el *etree.Element) ([]node, error) {
	var out []node
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			out = append(out, charDataNodes(t.Data)...)
		case *etree.Element:
			n, err := p.parseElement(t)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func (p *parser) parseElement(el *etree.Element) (node, error) {
	span := p.span()
	switch el.Tag {
	case "p":
		return parbreakNode{}, nil
	case "br":
		return linebreakNode{}, nil
	case "text":
		return verbatimNode{text: el.Text()}, nil
	case "vspace", "hspace":
		amount, err := geom.ParseLinear(el.SelectAttrValue("amount", ""))
		if err != nil {
			return nil, fmt.Errorf("<%s>: bad amount: %w", el.Tag, err)
		}
		axis := geom.GenAxisMain
		if el.Tag == "hspace" {
			axis = geom.GenAxisCross
		}
		return spacingNode{axis: axis, amount: amount}, nil
	case "pagebreak":
		keep, err := boolAttr(el, "keep", false)
		if err != nil {
			return nil, err
		}
		return pagebreakNode{keep: keep, span: span}, nil
	case "group":
		body, err := p.parseChildren(el)
		if err != nil {
			return nil, err
		}
		return groupNode{body: body}, nil
	case "font":
		return p.parseFont(el)
	case "align":
		return p.parseAlign(el)
	case "lang":
		lang, err := exec.NewLangState(el.SelectAttrValue("tag", ""))
		if err != nil {
			return nil, fmt.Errorf("<lang>: bad tag: %w", err)
		}
		body, err := p.parseChildren(el)
		if err != nil {
			return nil, err
		}
		return langNode{lang: lang, body: body}, nil
	case "page":
		return p.parsePage(el, span)
	default:
		return unknownNode{tag: el.Tag, span: span}, nil
	}
}

func (p *parser) parseFont(el *etree.Element) (node, error) {
	var n fontNode
	if v := el.SelectAttrValue("size", ""); v != "" {
		size, err := geom.ParseLinear(v)
		if err != nil {
			return nil, fmt.Errorf("<font>: bad size: %w", err)
		}
		n.size = &size
	}
	if v := el.SelectAttrValue("family", ""); v != "" {
		for _, fam := range strings.Split(v, ",") {
			if fam = strings.TrimSpace(fam); fam != "" {
				n.families = append(n.families, fam)
			}
		}
	}
	var err error
	if n.strong, err = optBoolAttr(el, "strong"); err != nil {
		return nil, err
	}
	if n.emph, err = optBoolAttr(el, "emph"); err != nil {
		return nil, err
	}
	if n.mono, err = boolAttr(el, "mono", false); err != nil {
		return nil, err
	}
	if n.body, err = p.parseChildren(el); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseAlign(el *etree.Element) (node, error) {
	var n alignNode
	if v := el.SelectAttrValue("main", ""); v != "" {
		a, err := geom.ParseAlign(v)
		if err != nil {
			return nil, fmt.Errorf("<align>: %w", err)
		}
		n.main = &a
	}
	if v := el.SelectAttrValue("cross", ""); v != "" {
		a, err := geom.ParseAlign(v)
		if err != nil {
			return nil, fmt.Errorf("<align>: %w", err)
		}
		n.cross = &a
	}
	body, err := p.parseChildren(el)
	if err != nil {
		return nil, err
	}
	n.body = body
	return n, nil
}

func (p *parser) parsePage(el *etree.Element, span syntax.Span) (node, error) {
	n := pageNode{span: span}
	w, h := el.SelectAttrValue("width", ""), el.SelectAttrValue("height", "")
	if (w == "") != (h == "") {
		return nil, fmt.Errorf("<page>: width and height must be given together")
	}
	if w != "" {
		width, err := geom.ParseLength(w)
		if err != nil {
			return nil, fmt.Errorf("<page>: bad width: %w", err)
		}
		height, err := geom.ParseLength(h)
		if err != nil {
			return nil, fmt.Errorf("<page>: bad height: %w", err)
		}
		n.size = &geom.Size{W: width, H: height}
	}
	if v := el.SelectAttrValue("margin", ""); v != "" {
		margin, err := geom.ParseLinear(v)
		if err != nil {
			return nil, fmt.Errorf("<page>: bad margin: %w", err)
		}
		n.margins = &margin
	}
	return n, nil
}

// charDataNodes turns character data into word runs with soft word spaces
// between them and at whitespace-trimmed edges. Edge spaces rely on the
// break automaton: they materialize only when adjacent content exists.
func charDataNodes(data string) []node {
	words := strings.Fields(data)
	if len(words) == 0 {
		if strings.TrimSpace(data) == "" && data != "" {
			return []node{wordSpaceNode{}}
		}
		return nil
	}
	var out []node
	if startsWithSpace(data) {
		out = append(out, wordSpaceNode{})
	}
	out = append(out, wordsNode{words: words})
	if endsWithSpace(data) {
		out = append(out, wordSpaceNode{})
	}
	return out
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

func endsWithSpace(s string) bool {
	var last rune
	for _, r := range s {
		last = r
	}
	return unicode.IsSpace(last)
}

func boolAttr(el *etree.Element, name string, def bool) (bool, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("<%s>: bad %s attribute: %w", el.Tag, name, err)
	}
	return b, nil
}

func optBoolAttr(el *etree.Element, name string) (*bool, error) {
	v := el.SelectAttrValue(name, "")
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("<%s>: bad %s attribute: %w", el.Tag, name, err)
	}
	return &b, nil
}
