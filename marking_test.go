package nets

import "testing"

func TestMarkingAddToPlace(t *testing.T) {
	tables := []struct {
		Marking
		pl       int
		mult     int
		expected Marking
	}{
		{Marking{}, 2, 6, Marking{Atom{2, 6}}},
		{Marking{Atom{3, 4}}, 3, 6, Marking{Atom{3, 10}}},
		{Marking{Atom{4, 4}}, 3, 0, Marking{Atom{4, 4}}},
		{Marking{Atom{4, 4}}, 4, -4, Marking{}},
		{Marking{Atom{4, 4}}, 3, 2, Marking{Atom{3, 2}, Atom{4, 4}}},
		{Marking{Atom{6, 7}, Atom{8, 7}, Atom{10, 4}}, 8, -7, Marking{Atom{6, 7}, Atom{10, 4}}},
	}

	for _, tt := range tables {
		actual := tt.Marking.AddToPlace(tt.pl, tt.mult)
		if !actual.Equal(tt.expected) {
			t.Errorf("%v .AddToPlace(%d, %d): expected %v, actual %v", tt.Marking, tt.pl, tt.mult, tt.expected, actual)
		}
	}
}

func TestMarkingAdd(t *testing.T) {
	tables := []struct {
		m1, m2, expected Marking
	}{
		{Marking{}, Marking{}, Marking{}},
		{Marking{Atom{1, 2}}, Marking{Atom{1, 3}}, Marking{Atom{1, 5}}},
		{Marking{Atom{0, 1}, Atom{2, 4}}, Marking{Atom{1, 7}}, Marking{Atom{0, 1}, Atom{1, 7}, Atom{2, 4}}},
	}
	for _, tt := range tables {
		actual := tt.m1.Add(tt.m2)
		if !actual.Equal(tt.expected) {
			t.Errorf("%v .Add(%v): expected %v, actual %v", tt.m1, tt.m2, tt.expected, actual)
		}
	}
}

func TestMarkingRemove(t *testing.T) {
	tables := []struct {
		m        Marking
		pl       int
		expected Marking
	}{
		{Marking{Atom{0, 1}, Atom{2, 3}, Atom{4, 5}}, 2, Marking{Atom{0, 1}, Atom{3, 5}}},
		{Marking{Atom{0, 1}}, 0, Marking{}},
	}
	for _, tt := range tables {
		actual := tt.m.remove(tt.pl)
		if !actual.Equal(tt.expected) {
			t.Errorf("%v .remove(%d): expected %v, actual %v", tt.m, tt.pl, tt.expected, actual)
		}
	}
}
