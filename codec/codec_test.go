package codec_test

import (
	"testing"
	"time"

	keymap "github.com/reoring/keymap"
	"github.com/reoring/keymap/codec"
)

func TestIdentity(t *testing.T) {
	v, err := codec.Identity("x")
	if err != nil || v != "x" {
		t.Fatalf("identity: %v %v", v, err)
	}
}

func TestInt(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{"342", 342},
		{"-7", -7},
		{12, 12},
		{int64(5), 5},
		{uint16(9), 9},
		{float64(4), 4},
	}
	for _, tc := range cases {
		v, err := codec.Int(tc.in)
		if err != nil {
			t.Fatalf("Int(%v): %v", tc.in, err)
		}
		if v != tc.want {
			t.Fatalf("Int(%v): got %v, want %v", tc.in, v, tc.want)
		}
	}
	for _, bad := range []any{"2.2", 2.5, "x", []int{1}} {
		if _, err := codec.Int(bad); err == nil {
			t.Fatalf("Int(%v): expected error", bad)
		}
	}
}

func TestFloat(t *testing.T) {
	v, err := codec.Float("32.50")
	if err != nil || v != 32.5 {
		t.Fatalf("Float: %v %v", v, err)
	}
	if v, _ := codec.Float(3); v != 3.0 {
		t.Fatalf("Float(3): %v", v)
	}
	if _, err := codec.Float("abc"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBool(t *testing.T) {
	for in, want := range map[string]bool{"true": true, "1": true, "f": false} {
		v, err := codec.Bool(in)
		if err != nil || v != want {
			t.Fatalf("Bool(%q): %v %v", in, v, err)
		}
	}
	if v, _ := codec.Bool(true); v != true {
		t.Fatalf("Bool passthrough failed")
	}
	if _, err := codec.Bool("yep"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestString(t *testing.T) {
	if v, _ := codec.String(42); v != "42" {
		t.Fatalf("String(42): %v", v)
	}
	if v, _ := codec.String("s"); v != "s" {
		t.Fatalf("String passthrough failed")
	}
}

func TestTimeAndRFC3339(t *testing.T) {
	v, err := codec.Time("2006-01-02")("2017-09-01")
	if err != nil {
		t.Fatalf("Time: %v", err)
	}
	if v.(time.Time).Day() != 1 {
		t.Fatalf("Time: %v", v)
	}
	v, err = codec.RFC3339("2017-09-01T10:30:00.5Z")
	if err != nil {
		t.Fatalf("RFC3339 nano form: %v", err)
	}
	if v.(time.Time).Hour() != 10 {
		t.Fatalf("RFC3339: %v", v)
	}
	if _, err := codec.RFC3339("2017-09-01"); err == nil {
		t.Fatalf("expected error for bare date")
	}
	now := time.Now()
	if v, _ := codec.RFC3339(now); v != now {
		t.Fatalf("time.Time should pass through")
	}
}

func TestJSON(t *testing.T) {
	v, err := codec.JSON(`{"a":[1,2]}`)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("JSON: %T", v)
	}
	if len(m["a"].([]any)) != 2 {
		t.Fatalf("JSON: %v", m)
	}
	if _, err := codec.JSON("{"); err == nil {
		t.Fatalf("expected error for truncated input")
	}
	if _, err := codec.JSON(42); err == nil {
		t.Fatalf("expected error for non-string input")
	}
}

func TestScalar(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"3", 3},
		{"2.5", 2.5},
		{"true", true},
		{"null", nil},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tc := range cases {
		v, err := codec.Scalar(tc.in)
		if err != nil {
			t.Fatalf("Scalar(%q): %v", tc.in, err)
		}
		if v != tc.want {
			t.Fatalf("Scalar(%q): got %T %v, want %T %v", tc.in, v, v, tc.want, tc.want)
		}
	}
	if _, err := codec.Scalar(42); err == nil {
		t.Fatalf("expected error for non-string input")
	}
}

func TestCoercionsComposeWithCastedBuilds(t *testing.T) {
	s := keymap.MustNew("Row", "id score active")
	if err := s.SetCoercions(keymap.Pos(codec.Int, codec.Scalar, codec.Bool)); err != nil {
		t.Fatalf("SetCoercions: %v", err)
	}
	r, err := s.RecordCasted(keymap.Pos("7", "99.5", "true"))
	if err != nil {
		t.Fatalf("RecordCasted: %v", err)
	}
	if r.At(0) != int64(7) || r.At(1) != 99.5 || r.At(2) != true {
		t.Fatalf("row: %v", r.Values())
	}
}
