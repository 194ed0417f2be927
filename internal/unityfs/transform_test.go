package unityfs

import "testing"

func TestTransformRoundTripPreservesExtra(t *testing.T) {
	want := TransformFields{
		GameObject: PPtr{PathID: 1},
		Father:     PPtr{PathID: 10},
		Children:   []PPtr{{PathID: 2}, {PathID: 3}},
		Extra:      []byte{0xde, 0xad, 0xbe, 0xef},
	}

	data, err := EncodeTransform(want)
	if err != nil {
		t.Fatalf("EncodeTransform: %v", err)
	}

	got, err := DecodeTransform(data)
	if err != nil {
		t.Fatalf("DecodeTransform: %v", err)
	}

	if got.GameObject != want.GameObject || got.Father != want.Father {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if string(got.Extra) != string(want.Extra) {
		t.Errorf("Extra = %v, want %v", got.Extra, want.Extra)
	}
}

func TestIsTransformClass(t *testing.T) {
	cases := map[ClassID]bool{
		ClassTransform:     true,
		ClassRectTransform: true,
		ClassGameObject:    false,
		ClassCanvas:        false,
	}
	for class, want := range cases {
		if got := IsTransformClass(class); got != want {
			t.Errorf("IsTransformClass(%d) = %v, want %v", class, got, want)
		}
	}
}
