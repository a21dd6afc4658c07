package workforce

// Row is one display line of the dashboard. Every field is already formatted;
// consumers render the values verbatim and never parse them back.
type Row struct {
	Person               string `json:"person"`
	Past12Months         string `json:"past12Months"`
	Y2D                  string `json:"y2d"`
	May                  string `json:"may"`
	June                 string `json:"june"`
	July                 string `json:"july"`
	NetEarningsPrevMonth string `json:"netEarningsPrevMonth"`
}

// Cells returns the row's values in Columns order.
func (r Row) Cells() []string {
	return []string{
		r.Person,
		r.Past12Months,
		r.Y2D,
		r.May,
		r.June,
		r.July,
		r.NetEarningsPrevMonth,
	}
}

// Column describes one dashboard column for table consumers: Key matches the
// Row JSON field, Header is the human label.
type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

// Columns returns the dashboard's column schema. The set and order are fixed;
// callers must not need to inspect rows to lay out a table.
func Columns() []Column {
	return []Column{
		{Key: "person", Header: "Person"},
		{Key: "past12Months", Header: "Past 12 Months"},
		{Key: "y2d", Header: "Y2D"},
		{Key: "may", Header: "May"},
		{Key: "june", Header: "June"},
		{Key: "july", Header: "July"},
		{Key: "netEarningsPrevMonth", Header: "Net Earnings Prev Month"},
	}
}
