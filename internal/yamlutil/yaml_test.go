package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: story\ncount: 3\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict error: %v", err)
	}
	if s.Name != "story" || s.Count != 3 {
		t.Errorf("UnmarshalStrict = %+v, want {story 3}", s)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: story\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("UnmarshalStrict accepted unknown field")
	}
}

func TestUnmarshalStrict_Validation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}
	big := []byte("name: " + strings.Repeat("a", MaxInputSize))
	if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}
