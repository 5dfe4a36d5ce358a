package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/texteffects/character"
)

// ErrInvalidSortOrder is returned for an unknown grouping order
var ErrInvalidSortOrder = errors.New("invalid sort order")

// SortOrder selects how input characters are grouped
type SortOrder int

const (
	ColumnLeftToRight SortOrder = iota
	ColumnRightToLeft
	RowTopToBottom
	RowBottomToTop
	DiagonalTopLeftToBottomRight
	DiagonalBottomRightToTopLeft
	DiagonalBottomLeftToTopRight
	DiagonalTopRightToBottomLeft
)

var sortOrderNames = map[SortOrder]string{
	ColumnLeftToRight:            "column_left_to_right",
	ColumnRightToLeft:            "column_right_to_left",
	RowTopToBottom:               "row_top_to_bottom",
	RowBottomToTop:               "row_bottom_to_top",
	DiagonalTopLeftToBottomRight: "diagonal_top_left_to_bottom_right",
	DiagonalBottomRightToTopLeft: "diagonal_bottom_right_to_top_left",
	DiagonalBottomLeftToTopRight: "diagonal_bottom_left_to_top_right",
	DiagonalTopRightToBottomLeft: "diagonal_top_right_to_bottom_left",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder resolves a name case-insensitively; '-' and ' ' read as '_'
func ParseSortOrder(name string) (SortOrder, error) {
	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
	for order, n := range sortOrderNames {
		if n == normalized {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSortOrder, name)
}

// SortOrderNames lists every valid order name
func SortOrderNames() []string {
	names := make([]string, 0, len(sortOrderNames))
	for _, n := range sortOrderNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// groupKey maps an input character to its group key and whether keys ascend
func groupKey(order SortOrder) (key func(*character.Character) int, ascending bool, ok bool) {
	switch order {
	case ColumnLeftToRight:
		return func(ch *character.Character) int { return ch.InputCoord.Column }, true, true
	case ColumnRightToLeft:
		return func(ch *character.Character) int { return ch.InputCoord.Column }, false, true
	case RowTopToBottom:
		return func(ch *character.Character) int { return ch.InputCoord.Row }, false, true
	case RowBottomToTop:
		return func(ch *character.Character) int { return ch.InputCoord.Row }, true, true
	case DiagonalTopLeftToBottomRight:
		return func(ch *character.Character) int { return ch.InputCoord.Column - ch.InputCoord.Row }, true, true
	case DiagonalBottomRightToTopLeft:
		return func(ch *character.Character) int { return ch.InputCoord.Column - ch.InputCoord.Row }, false, true
	case DiagonalBottomLeftToTopRight:
		return func(ch *character.Character) int { return ch.InputCoord.Row + ch.InputCoord.Column }, true, true
	case DiagonalTopRightToBottomLeft:
		return func(ch *character.Character) int { return ch.InputCoord.Row + ch.InputCoord.Column }, false, true
	}
	return nil, false, false
}

// Characters groups input characters by order
// Within a group characters keep input order
func (c *Compositor) Characters(order SortOrder) ([][]*character.Character, error) {
	key, ascending, ok := groupKey(order)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortOrder, order)
	}

	groups := make(map[int][]*character.Character)
	for _, ch := range c.InputCharacters() {
		k := key(ch)
		groups[k] = append(groups[k], ch)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	if ascending {
		sort.Ints(keys)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	}

	out := make([][]*character.Character, len(keys))
	for i, k := range keys {
		out[i] = groups[k]
	}
	return out, nil
}

// InputByRow maps each input row to its characters, left to right
func (c *Compositor) InputByRow() map[int][]*character.Character {
	rows := make(map[int][]*character.Character)
	for _, ch := range c.InputCharacters() {
		rows[ch.InputCoord.Row] = append(rows[ch.InputCoord.Row], ch)
	}
	return rows
}

// InputByColumn maps each input column to its characters, top to bottom
func (c *Compositor) InputByColumn() map[int][]*character.Character {
	columns := make(map[int][]*character.Character)
	for _, ch := range c.InputCharacters() {
		columns[ch.InputCoord.Column] = append(columns[ch.InputCoord.Column], ch)
	}
	return columns
}
