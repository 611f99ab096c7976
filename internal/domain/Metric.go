package domain

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

type metricKind uint8

const (
	metricFloat metricKind = iota
	metricInt
	metricText
)

// Metric é o valor escalar de uma célula: número ou texto já formatado
type Metric struct {
	kind  metricKind
	value float64
	text  string
}

func Float(v float64) Metric {
	return Metric{kind: metricFloat, value: v}
}

func Int(v int64) Metric {
	return Metric{kind: metricInt, value: float64(v)}
}

// Text representa um valor que já chega formatado (ex: "1.03%")
func Text(v string) Metric {
	return Metric{kind: metricText, text: v}
}

// Number retorna o valor numérico; ok é falso para valores de texto
func (m Metric) Number() (float64, bool) {
	if m.kind == metricText {
		return 0, false
	}
	return m.value, true
}

// String usa a menor representação do número: 10.0 vira "10" e 0.00 vira "0"
func (m Metric) String() string {
	switch m.kind {
	case metricText:
		return m.text
	case metricInt:
		return strconv.FormatInt(int64(m.value), 10)
	default:
		if m.value == 0 {
			return "0"
		}
		return strconv.FormatFloat(m.value, 'f', -1, 64)
	}
}

// MarshalJSON mantém o tipo original da célula: números saem como número JSON e
// valores já formatados (ex: a conversão da tabela de recompra) saem como string
func (m Metric) MarshalJSON() ([]byte, error) {
	v, ok := m.Number()
	if !ok {
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(m.text)
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}
