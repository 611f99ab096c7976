package domain

import "strings"

// Selection identifica qual tabela de coortes está sendo exibida
type Selection string

const (
	SelectionPrimary Selection = "primary"
	SelectionRepeat  Selection = "repeat"

	// DefaultSelection é o estado inicial do seletor
	DefaultSelection = SelectionPrimary
)

// Selections lista os valores aceitos pelo seletor, na ordem em que aparecem na página
var Selections = []Selection{SelectionPrimary, SelectionRepeat}

// ParseSelection converte o valor recebido do seletor. "main" é aceito como
// alias de primary porque era o valor usado pela primeira versão da página.
func ParseSelection(value string) (Selection, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SelectionPrimary), "main":
		return SelectionPrimary, true
	case string(SelectionRepeat):
		return SelectionRepeat, true
	default:
		return Selection(value), false
	}
}

func (s Selection) Valid() bool {
	return s == SelectionPrimary || s == SelectionRepeat
}

// Toggle retorna o outro estado do seletor
func (s Selection) Toggle() Selection {
	if s == SelectionRepeat {
		return SelectionPrimary
	}
	return SelectionRepeat
}

func (s Selection) String() string {
	return string(s)
}
