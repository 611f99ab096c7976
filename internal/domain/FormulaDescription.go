package domain

import "fmt"

// FormulaDescription é apenas documentação: a expressão nunca é avaliada
type FormulaDescription struct {
	Metric      string `json:"metric"`
	Expression  string `json:"expression"`
	Explanation string `json:"explanation"`
}

func (f FormulaDescription) String() string {
	return fmt.Sprintf("%s = %s — %s", f.Metric, f.Expression, f.Explanation)
}
