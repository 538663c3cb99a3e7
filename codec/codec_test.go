package codec

import (
	"strings"
	"testing"
)

type sample struct {
	ID   int    `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := sample{ID: 42, Name: "Ada"}
	b, err := JSON[sample]{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := JSON[sample]{}.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	in := sample{ID: 42, Name: "Ada"}
	b, err := Msgpack[sample]{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Msgpack[sample]{}.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	c := MustCBOR[sample](true)
	in := sample{ID: 42, Name: "Ada"}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestLimitRejectsOversized(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 8}

	if _, err := c.Decode([]byte("short")); err != nil {
		t.Fatalf("Decode under limit: %v", err)
	}
	if _, err := c.Decode([]byte(strings.Repeat("x", 9))); err == nil {
		t.Fatal("Decode over limit must fail")
	}
	// Encode is never capped.
	if _, err := c.Encode(strings.Repeat("x", 100)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}
