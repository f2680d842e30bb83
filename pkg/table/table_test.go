package table

import (
	"errors"
	"reflect"
	"testing"
)

var sample = Table{
	{"Alex", "M", "41", "74", "170"},
	{"Bert", "M", "42", "68", "166"},
	{"Carl", "F", "32", "70", "155"},
}

func TestTable_Line(t *testing.T) {
	got, err := sample.Line(1)
	if err != nil {
		t.Fatalf("Line(1) failed: %v", err)
	}
	if got != "Bert, M, 42, 68, 166" {
		t.Errorf("Line(1) = %q, want %q", got, "Bert, M, 42, 68, 166")
	}

	for _, i := range []int{-1, 3} {
		if _, err := sample.Line(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Line(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestTable_Column(t *testing.T) {
	got, err := sample.Column(1)
	if err != nil {
		t.Fatalf("Column(1) failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"M", "M", "F"}) {
		t.Errorf("Column(1) = %v, want [M M F]", got)
	}

	if _, err := sample.Column(99); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Column(99) = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := sample.Column(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Column(-1) = %v, want ErrIndexOutOfRange", err)
	}

	// Ragged: one record lacking the column fails the whole call.
	ragged := Table{{"a", "b"}, {"c"}}
	if _, err := ragged.Column(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("ragged Column(1) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestTable_SumColumn(t *testing.T) {
	got, err := sample.SumColumn(2)
	if err != nil {
		t.Fatalf("SumColumn(2) failed: %v", err)
	}
	if got != 115 {
		t.Errorf("SumColumn(2) = %d, want 115", got)
	}

	if _, err := sample.SumColumn(0); !errors.Is(err, ErrNotInteger) {
		t.Errorf("SumColumn(0) = %v, want ErrNotInteger", err)
	}
	if _, err := sample.SumColumn(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SumColumn(7) = %v, want ErrIndexOutOfRange", err)
	}

	negative := Table{{"-5"}, {"3"}}
	sum, err := negative.SumColumn(0)
	if err != nil {
		t.Fatalf("SumColumn over negatives failed: %v", err)
	}
	if sum != -2 {
		t.Errorf("SumColumn = %d, want -2", sum)
	}
}

func TestTable_Widths(t *testing.T) {
	tbl := Table{{"a", "bb"}, {"ccc", "d"}, {"e"}}
	got := tbl.Widths()
	if !reflect.DeepEqual(got, []int{3, 2}) {
		t.Errorf("Widths = %v, want [3 2]", got)
	}
}

func TestTable_String(t *testing.T) {
	tbl := Table{{"a", "bb"}, {"ccc", "d"}}
	expected := "a    bb\nccc  d\n"
	if got := tbl.String(); got != expected {
		t.Errorf("String = %q, want %q", got, expected)
	}
}

// Widths and padding count runes, not bytes: the cleaner admits
// non-ASCII letters and they must not skew the alignment.
func TestTable_RenderMultibyte(t *testing.T) {
	tbl := Table{{"été", "1"}, {"anna", "22"}}

	if got := tbl.Widths(); !reflect.DeepEqual(got, []int{4, 2}) {
		t.Fatalf("Widths = %v, want [4 2]", got)
	}

	expected := "été   1\nanna  22\n"
	if got := tbl.String(); got != expected {
		t.Errorf("String = %q, want %q", got, expected)
	}
}
