package luapat

import "fmt"

// Item is one pattern item as listed by Explain.
type Item struct {
	Kind   ItemKind
	Pos    int    // offset of the item in the pattern
	Text   string // the item without its suffix
	Suffix byte   // '*', '+', '-', '?' or 0
}

func (it Item) String() string {
	if it.Suffix != 0 {
		return fmt.Sprintf("%d: %s %q %c", it.Pos, it.Kind, it.Text, it.Suffix)
	}
	return fmt.Sprintf("%d: %s %q", it.Pos, it.Kind, it.Text)
}

// Explain splits pattern into its items, reporting the same syntax errors a
// match would. It reports whether the pattern is anchored with '^'.
func Explain(pattern string) (items []Item, anchored bool, err error) {
	p := []byte(pattern)
	i := 0
	if len(p) > 0 && p[0] == '^' {
		anchored = true
		i = 1
	}
	for i < len(p) {
		start := i
		switch c := p[i]; {
		case c == '(' && i+1 < len(p) && p[i+1] == ')':
			items = append(items, Item{Kind: ItemPosition, Pos: start, Text: "()"})
			i += 2
			continue
		case c == '(':
			items = append(items, Item{Kind: ItemOpen, Pos: start, Text: "("})
			i++
			continue
		case c == ')':
			items = append(items, Item{Kind: ItemClose, Pos: start, Text: ")"})
			i++
			continue
		case c == '$' && i+1 == len(p):
			items = append(items, Item{Kind: ItemEnd, Pos: start, Text: "$"})
			i++
			continue
		case c == '%' && i+1 < len(p) && p[i+1] == 'b':
			if i+3 >= len(p) {
				return nil, anchored, newError(BalancedNoArguments, start)
			}
			items = append(items, Item{Kind: ItemBalanced, Pos: start, Text: pattern[i : i+4]})
			i += 4
			continue
		case c == '%' && i+1 < len(p) && p[i+1] == 'f':
			if i+2 >= len(p) || p[i+2] != '[' {
				return nil, anchored, newError(FrontierNoOpenBracket, start)
			}
			ep, err := classEnd(p, i+2)
			if err != nil {
				return nil, anchored, err
			}
			items = append(items, Item{Kind: ItemFrontier, Pos: start, Text: pattern[i:ep]})
			i = ep
			continue
		case c == '%' && i+1 < len(p) && '0' <= p[i+1] && p[i+1] <= '9':
			items = append(items, Item{Kind: ItemBackref, Pos: start, Text: pattern[i : i+2]})
			i += 2
			continue
		}

		ep, err := classEnd(p, i)
		if err != nil {
			return nil, anchored, err
		}
		it := Item{Pos: start, Text: pattern[i:ep]}
		switch p[i] {
		case '.':
			it.Kind = ItemAny
		case '%':
			it.Kind = ItemClass
		case '[':
			it.Kind = ItemSet
		default:
			it.Kind = ItemLiteral
		}
		i = ep
		if isSuffix(p, ep) {
			it.Suffix = p[ep]
			i++
		}
		items = append(items, it)
	}
	return items, anchored, nil
}
