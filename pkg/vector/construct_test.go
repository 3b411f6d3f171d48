// pkg/vector/construct_test.go
package vector

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstructionEquivalence(t *testing.T) {
	want := []float64{1, -2.5, 3, 0}

	fromNew, err := New(1, -2.5, 3, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	fromSlice, err := FromSlice([]float64{1, -2.5, 3, 0})
	if err != nil {
		t.Fatalf("FromSlice() error = %v", err)
	}
	fromNumbers, err := FromNumbers([]float32{1, -2.5, 3, 0})
	if err != nil {
		t.Fatalf("FromNumbers() error = %v", err)
	}
	fromMap, err := FromMap(map[int]float64{0: 1, 1: -2.5, 2: 3, 3: 0})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	fromFour, err := New4(1, -2.5, 3, 0)
	if err != nil {
		t.Fatalf("New4() error = %v", err)
	}

	vectors := map[string]*ArrayVector{
		"slice":   fromSlice,
		"numbers": fromNumbers,
		"map":     fromMap,
		"four":    fromFour,
	}
	for name, v := range vectors {
		if !fromNew.Equals(v) {
			t.Errorf("%s: %v not equal to %v", name, v, fromNew)
		}
		if fromNew.Hash() != v.Hash() {
			t.Errorf("%s: hash %d differs from %d", name, v.Hash(), fromNew.Hash())
		}
		if diff := cmp.Diff(want, v.Elements()); diff != "" {
			t.Errorf("%s: elements mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestFromSliceCopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := FromSlice(src)
	if err != nil {
		t.Fatalf("FromSlice() error = %v", err)
	}
	src[0] = 100

	if got, _ := v.At(0); got != 1 {
		t.Errorf("vector changed after source mutation: At(0) = %v, expected 1", got)
	}
}

func TestFromSet(t *testing.T) {
	v, err := FromSet(map[int]struct{}{3: {}, 1: {}, 2: {}})
	if err != nil {
		t.Fatalf("FromSet() error = %v", err)
	}
	if !v.Equals(MustNew(1, 2, 3)) {
		t.Errorf("FromSet() = %v, expected <1, 2, 3>", v)
	}
}

func TestFromMapOrdersByKey(t *testing.T) {
	v, err := FromMap(map[string]int{"c": 3, "a": 1, "b": 2})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if !v.Equals(MustNew(1, 2, 3)) {
		t.Errorf("FromMap() = %v, expected <1, 2, 3>", v)
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*ArrayVector, error)
		wantErr error
	}{
		{
			name:    "no_arguments",
			build:   func() (*ArrayVector, error) { return New() },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "nil_slice",
			build:   func() (*ArrayVector, error) { return FromSlice(nil) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "empty_slice",
			build:   func() (*ArrayVector, error) { return FromSlice([]float64{}) },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "nan_element",
			build:   func() (*ArrayVector, error) { return New(1, math.NaN()) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "nil_numbers",
			build:   func() (*ArrayVector, error) { return FromNumbers[int](nil) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "empty_numbers",
			build:   func() (*ArrayVector, error) { return FromNumbers([]int{}) },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "nil_set",
			build:   func() (*ArrayVector, error) { return FromSet[float64](nil) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "empty_set",
			build:   func() (*ArrayVector, error) { return FromSet(map[float64]struct{}{}) },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "nil_map",
			build:   func() (*ArrayVector, error) { return FromMap[string, float64](nil) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "empty_map",
			build:   func() (*ArrayVector, error) { return FromMap(map[string]float64{}) },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "zero_dimension",
			build:   func() (*ArrayVector, error) { return Ones(0) },
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "nil_generator",
			build:   func() (*ArrayVector, error) { return Generate(3, nil) },
			wantErr: ErrNullArgument,
		},
		{
			name:    "nil_random_source",
			build:   func() (*ArrayVector, error) { return Random(3, 0, 1, nil) },
			wantErr: ErrNullArgument,
		},
		{
			name: "inverted_random_bounds",
			build: func() (*ArrayVector, error) {
				return Random(3, 1, 0, rand.New(rand.NewSource(1)))
			},
			wantErr: ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tt.wantErr)
			}
			if v != nil {
				t.Errorf("expected nil vector on error, got %v", v)
			}
		})
	}
}

func TestGenerators(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		v, err := Zero(3)
		if err != nil {
			t.Fatalf("Zero() error = %v", err)
		}
		if !v.IsZero() || v.Dimension() != 3 {
			t.Errorf("Zero(3) = %v", v)
		}
	})

	t.Run("ones", func(t *testing.T) {
		v, err := Ones(4)
		if err != nil {
			t.Fatalf("Ones() error = %v", err)
		}
		if !v.Equals(MustNew(1, 1, 1, 1)) {
			t.Errorf("Ones(4) = %v", v)
		}
	})

	t.Run("generate", func(t *testing.T) {
		v, err := Generate(3, func(i int) float64 { return float64(i * i) })
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !v.Equals(MustNew(0, 1, 4)) {
			t.Errorf("Generate() = %v, expected <0, 1, 4>", v)
		}
	})

	t.Run("random_within_bounds", func(t *testing.T) {
		v, err := Random(50, -2, 3, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("Random() error = %v", err)
		}
		for i, x := range v.Elements() {
			if x < -2 || x >= 3 {
				t.Errorf("element %d = %v outside [-2, 3)", i, x)
			}
		}
	})

	t.Run("random_deterministic_seed", func(t *testing.T) {
		a, _ := Random(5, 0, 1, rand.New(rand.NewSource(7)))
		b, _ := Random(5, 0, 1, rand.New(rand.NewSource(7)))
		if !a.Equals(b) {
			t.Errorf("same seed produced %v and %v", a, b)
		}
	})
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() with no elements did not panic")
		}
	}()
	MustNew()
}
