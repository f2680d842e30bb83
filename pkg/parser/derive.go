package parser

// GetLine re-parses input and returns record line rendered as
// comma-space-joined fields.
func GetLine(input string, line int) (string, error) {
	tbl, err := Parse(input)
	if err != nil {
		return "", err
	}
	return tbl.Line(line)
}

// GetColumn re-parses input and returns field col from every record.
func GetColumn(input string, col int) ([]string, error) {
	tbl, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return tbl.Column(col)
}

// SumColumn re-parses input and sums field col of every record as
// signed integers.
func SumColumn(input string, col int) (int, error) {
	tbl, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return tbl.SumColumn(col)
}
