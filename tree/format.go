package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid tree syntax")

func (l *Leaf) String() string {
	return "Leaf(" + strconv.Itoa(l.label) + ")"
}

func (b *Branch) String() string {
	var sb strings.Builder
	writeTree(&sb, b)
	return sb.String()
}

func writeTree(sb *strings.Builder, t Tree) {
	switch n := t.(type) {
	case *Leaf:
		sb.WriteString("Leaf(")
		sb.WriteString(strconv.Itoa(n.label))
		sb.WriteString(")")
	case *Branch:
		sb.WriteString("Branch(")
		writeTree(sb, n.left)
		sb.WriteString(", ")
		writeTree(sb, n.right)
		sb.WriteString(")")
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}

// Parses the textual form produced by String, eg "Branch(Leaf(1), Leaf(2))". Whitespace between tokens is ignored.
//
// Labels are validated against maxLabel the same way as NewLeaf. Syntax problems return an error wrapping ErrSyntax.
func Parse(s string, maxLabel int) (Tree, error) {
	p := parser{src: s, maxLabel: maxLabel}
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}
	return t, nil
}

type parser struct {
	src      string
	pos      int
	maxLabel int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(tok string) error {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], tok) {
		return p.errorf("expected %q", tok)
	}
	p.pos += len(tok)
	return nil
}

func (p *parser) tree() (Tree, error) {
	p.skipSpace()
	rest := p.src[p.pos:]
	switch {
	case strings.HasPrefix(rest, "Leaf"):
		return p.leaf()
	case strings.HasPrefix(rest, "Branch"):
		return p.branch()
	default:
		return nil, p.errorf("expected Leaf or Branch")
	}
}

func (p *parser) leaf() (Tree, error) {
	if err := p.expect("Leaf"); err != nil {
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '-' || ('0' <= p.src[p.pos] && p.src[p.pos] <= '9')) {
		p.pos++
	}
	label, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		p.pos = start
		return nil, p.errorf("expected integer label")
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	l, err := NewLeaf(label, p.maxLabel)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (p *parser) branch() (Tree, error) {
	if err := p.expect("Branch"); err != nil {
		return nil, err
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	left, err := p.tree()
	if err != nil {
		return nil, err
	}
	if err := p.expect(","); err != nil {
		return nil, err
	}
	right, err := p.tree()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return NewBranch(left, right), nil
}
