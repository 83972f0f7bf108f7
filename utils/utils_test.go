package utils_test

import (
	"errors"
	"testing"

	"github.com/defuture-io/defuture/token"
	"github.com/defuture-io/defuture/utils"
)

func TestReadTestDataFiltersDisabled(t *testing.T) {
	t.Parallel()

	data := utils.ReadTestData([]byte(`
- label: enabled
  enable: true
  input: "(var x)"
  expected:
    rewrite: "(var x)"
- label: disabled
  enable: false
  input: "(var y)"
`))

	if len(data) != 1 {
		t.Fatalf("ReadTestData returned %d cases, expected 1", len(data))
	}
	if data[0].Label != "enabled" {
		t.Errorf("ReadTestData kept %q, expected the enabled case", data[0].Label)
	}
}

func TestErrorAt(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")

	err := utils.ErrorAt{Where: token.Token{Kind: token.IDENT, Lexeme: "x", Line: 3}, Err: inner}
	if got := err.Error(); got != "at 3: `x`, boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Errorf("ErrorAt must unwrap to the inner error")
	}

	atEnd := utils.ErrorAt{Where: token.Token{Kind: token.EOF}, Err: inner}
	if got := atEnd.Error(); got != "at end: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()

	files, err := utils.FindSourceFiles("../testdata")
	if err != nil {
		t.Fatalf("FindSourceFiles returned error: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("FindSourceFiles found no .tree files")
	}
	for _, file := range files {
		if got := file[len(file)-5:]; got != ".tree" {
			t.Errorf("FindSourceFiles returned %s, expected a .tree file", file)
		}
	}
}
