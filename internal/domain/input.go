package domain

import "github.com/shopspring/decimal"

type NewOrder struct {
	Name           string
	IsOwnMaterial  bool
	Price          decimal.Decimal
	AdvancePayment decimal.Decimal
	AlexPercentage decimal.Decimal
	PaidToAlex     decimal.Decimal
	Month          int
	Year           int
	CreatedBy      int
}

// OrderPatch carries the fields an update supplies. Nil fields keep their
// stored value.
type OrderPatch struct {
	Name           *string
	IsOwnMaterial  *bool
	Price          *decimal.Decimal
	AdvancePayment *decimal.Decimal
	AlexPercentage *decimal.Decimal
	PaidToAlex     *decimal.Decimal
	Month          *int
	Year           *int
}

type Payment struct {
	// Cumulative is the new total paid to Alex.
	Cumulative decimal.Decimal
	// Increment is the amount paid in this operation.
	Increment decimal.Decimal
}

// ExportScope selects the orders to export. All wins over Month/Year; with
// neither set the export is empty.
type ExportScope struct {
	All   bool
	Month int
	Year  int
}

type CSVFile struct {
	Filename string
	Data     []byte
}
