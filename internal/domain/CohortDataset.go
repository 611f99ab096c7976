package domain

// CohortRecord representa uma linha por coorte de aquisição
type CohortRecord struct {
	Cohort               string // Período no formato yyyy-mm
	UniqueUsers          int64
	ConversionRate       Metric // Número na tabela principal, texto "x.xx%" na de recompra
	Buyers               int64
	AverageOrderValue    float64
	COGSRate             float64
	Transactions         int64
	PurchasesPerCustomer float64
	GrossLTV             float64
	LTV                  float64
	LifetimeCost         float64
	AcquisitionCost      float64
	ContributionMargin   float64
	Revenue              float64
	RetentionRate        *float64 // Apenas na tabela principal
}

// Column associa o nome exibido no cabeçalho ao valor extraído de cada registro
type Column struct {
	Name  string
	Value func(CohortRecord) Metric
}

// CohortDataset é uma sequência ordenada de registros com o mesmo esquema de colunas.
// Não possui métodos de escrita: depois de construído é somente leitura.
type CohortDataset struct {
	name    string
	title   string
	columns []Column
	records []CohortRecord
}

func NewCohortDataset(name, title string, columns []Column, records []CohortRecord) *CohortDataset {
	return &CohortDataset{
		name:    name,
		title:   title,
		columns: append([]Column(nil), columns...),
		records: append([]CohortRecord(nil), records...),
	}
}

func (d *CohortDataset) Name() string {
	return d.name
}

func (d *CohortDataset) Title() string {
	return d.title
}

func (d *CohortDataset) Len() int {
	return len(d.records)
}

// ColumnNames retorna os nomes das colunas na ordem do esquema
func (d *CohortDataset) ColumnNames() []string {
	names := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		names = append(names, col.Name)
	}
	return names
}

// Records retorna uma cópia dos registros
func (d *CohortDataset) Records() []CohortRecord {
	return append([]CohortRecord(nil), d.records...)
}

// Cells retorna os valores tipados do registro i, na ordem das colunas
func (d *CohortDataset) Cells(i int) []Metric {
	record := d.records[i]
	cells := make([]Metric, 0, len(d.columns))
	for _, col := range d.columns {
		cells = append(cells, col.Value(record))
	}
	return cells
}

// Row retorna as células do registro i já convertidas para texto
func (d *CohortDataset) Row(i int) []string {
	cells := d.Cells(i)
	row := make([]string, 0, len(cells))
	for _, cell := range cells {
		row = append(row, cell.String())
	}
	return row
}
