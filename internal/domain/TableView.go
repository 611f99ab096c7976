package domain

import (
	"maps"
	"slices"
)

// TableView é o fragmento que substitui por inteiro a área de exibição da página
type TableView struct {
	Selection  Selection         `json:"selection"`
	Dataset    string            `json:"dataset"`
	Title      string            `json:"title"`
	Header     []string          `json:"header"`
	Rows       [][]string        `json:"rows"`  // Células como texto, na forma exibida na página
	Cells      [][]Metric        `json:"cells"` // Mesmas células com o tipo original (número ou texto)
	CellStyle  map[string]string `json:"cell_style"`
	TableStyle map[string]string `json:"table_style"`
}

// Equal compara duas visões estruturalmente
func (v *TableView) Equal(other *TableView) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Selection != other.Selection || v.Dataset != other.Dataset || v.Title != other.Title {
		return false
	}
	if !slices.Equal(v.Header, other.Header) || len(v.Rows) != len(other.Rows) || len(v.Cells) != len(other.Cells) {
		return false
	}
	for i := range v.Rows {
		if !slices.Equal(v.Rows[i], other.Rows[i]) {
			return false
		}
	}
	for i := range v.Cells {
		if !slices.Equal(v.Cells[i], other.Cells[i]) {
			return false
		}
	}
	return maps.Equal(v.CellStyle, other.CellStyle) && maps.Equal(v.TableStyle, other.TableStyle)
}
