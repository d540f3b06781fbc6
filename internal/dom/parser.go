package dom

import "strings"

// entities is the closed set of HTML entities this parser decodes.
var entities = map[string]rune{
	"amp":   '&',
	"lt":    '<',
	"gt":    '>',
	"quot":  '"',
	"#39":   '\'',
	"apos":  '\'',
	"nbsp":  ' ',
}

// Parser is a recursive-descent tokenizer over a UTF-8 code-point
// cursor. It never fails: malformed markup produces whatever forest it
// can.
type Parser struct {
	src []rune
	pos int
}

// Parse tokenizes html into a Document. Fails-soft: always succeeds.
func Parse(html string) *Document {
	p := &Parser{src: []rune(html)}
	return &Document{Nodes: p.parseNodes("")}
}

func (p *Parser) eof() bool { return p.pos >= len(p.src) }

func (p *Parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekAt(offset int) rune {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.src) {
		return 0
	}
	return p.src[idx]
}

func (p *Parser) startsWith(s string) bool {
	rs := []rune(s)
	if p.pos+len(rs) > len(p.src) {
		return false
	}
	for i, r := range rs {
		if p.src[p.pos+i] != r {
			return false
		}
	}
	return true
}

// parseNodes parses a run of sibling nodes until EOF or, inside an
// element (stopTag != ""), until any closing tag, which is consumed.
// At the document root (stopTag == "") stray closing tags are skipped
// and parsing continues to EOF.
func (p *Parser) parseNodes(stopTag string) []Node {
	var nodes []Node
	for !p.eof() {
		if p.peek() == '<' {
			if p.startsWith("</") {
				// Any closing tag ends the current element; the name
				// need not match (tolerated per spec).
				p.skipClosingTag()
				if stopTag == "" {
					continue
				}
				return nodes
			}
			if p.startsWith("<!--") {
				p.skipComment()
				continue
			}
			if p.startsWith("<!") || p.startsWith("<?") {
				p.skipUntilGT()
				continue
			}
			node := p.parseElement()
			if node != nil {
				nodes = append(nodes, node)
			}
			continue
		}
		text := p.parseText()
		if isWhitespaceOnly(text) {
			continue
		}
		nodes = append(nodes, Text(text))
	}
	return nodes
}

func (p *Parser) skipComment() {
	p.pos += len("<!--")
	idx := indexOf(p.src, p.pos, "-->")
	if idx < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos = idx + len("-->")
}

func (p *Parser) skipUntilGT() {
	for !p.eof() && p.peek() != '>' {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
}

func (p *Parser) skipClosingTag() {
	p.skipUntilGT()
}

func (p *Parser) parseText() string {
	var sb strings.Builder
	for !p.eof() && p.peek() != '<' {
		if p.peek() == '&' {
			if r, width, ok := p.tryDecodeEntity(); ok {
				sb.WriteRune(r)
				p.pos += width
				continue
			}
		}
		sb.WriteRune(p.peek())
		p.pos++
	}
	return sb.String()
}

// tryDecodeEntity attempts to decode an entity starting at the current
// '&'. Returns the replacement rune, the number of source runes
// consumed (including '&' and ';'), and whether decoding succeeded.
func (p *Parser) tryDecodeEntity() (rune, int, bool) {
	end := -1
	for i := 1; i < 12 && p.pos+i < len(p.src); i++ {
		if p.src[p.pos+i] == ';' {
			end = i
			break
		}
	}
	if end < 0 {
		return 0, 0, false
	}
	name := string(p.src[p.pos+1 : p.pos+end])
	r, ok := entities[name]
	if !ok {
		return 0, 0, false
	}
	return r, end + 1, true
}

func (p *Parser) parseElement() Node {
	p.pos++ // consume '<'
	name := p.parseTagName()
	if name == "" {
		return Text("<")
	}
	tag := ParseTag(strings.ToLower(name))
	attrs := map[string]string{}
	selfClosing := tag == TagImg

	for {
		p.skipWhitespace()
		if p.eof() {
			break
		}
		if p.peek() == '/' {
			selfClosing = true
			p.pos++
			continue
		}
		if p.peek() == '>' {
			p.pos++
			break
		}
		attrName, attrValue := p.parseAttribute()
		if attrName == "" {
			p.pos++
			continue
		}
		attrs[strings.ToLower(attrName)] = attrValue
	}

	el := &Element{Tag: tag, Name: strings.ToLower(name), Attrs: attrs}
	if selfClosing {
		return el
	}
	el.Children = p.parseNodes(strings.ToLower(name))
	return el
}

func (p *Parser) parseTagName() string {
	start := p.pos
	for !p.eof() && isNameRune(p.peek()) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *Parser) parseAttribute() (string, string) {
	start := p.pos
	for !p.eof() && isNameRune(p.peek()) {
		p.pos++
	}
	name := string(p.src[start:p.pos])
	if name == "" {
		return "", ""
	}
	p.skipWhitespace()
	if p.eof() || p.peek() != '=' {
		return name, ""
	}
	p.pos++ // consume '='
	p.skipWhitespace()
	return name, p.parseAttrValue()
}

func (p *Parser) parseAttrValue() string {
	if p.eof() {
		return ""
	}
	quote := p.peek()
	if quote == '"' || quote == '\'' {
		p.pos++
		start := p.pos
		for !p.eof() && p.peek() != quote {
			p.pos++
		}
		value := string(p.src[start:p.pos])
		if !p.eof() {
			p.pos++ // consume closing quote
		}
		return decodeEntitiesInString(value)
	}
	start := p.pos
	for !p.eof() && !isUnquotedValueTerminator(p.peek()) {
		p.pos++
	}
	return decodeEntitiesInString(string(p.src[start:p.pos]))
}

func (p *Parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.peek()) {
		p.pos++
	}
}

func isNameRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isUnquotedValueTerminator(r rune) bool {
	return isWhitespace(r) || r == '>' || r == '/'
}

func isWhitespaceOnly(s string) bool {
	for _, r := range s {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

func indexOf(src []rune, from int, needle string) int {
	rs := []rune(needle)
	for i := from; i+len(rs) <= len(src); i++ {
		match := true
		for j, r := range rs {
			if src[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func decodeEntitiesInString(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	p := &Parser{src: []rune(s)}
	var sb strings.Builder
	for !p.eof() {
		if p.peek() == '&' {
			if r, width, ok := p.tryDecodeEntity(); ok {
				sb.WriteRune(r)
				p.pos += width
				continue
			}
		}
		sb.WriteRune(p.peek())
		p.pos++
	}
	return sb.String()
}
