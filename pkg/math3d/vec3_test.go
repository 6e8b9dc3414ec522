package math3d

import "testing"

func TestVec3Ordering(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want bool
	}{
		{"lower y", V3(10, 20, 30), V3(10, 30, 20), true},
		{"lower z", V3(10, 20, 30), V3(10, 20, 40), true},
		{"equal not less", V3(10, 20, 30), V3(10, 20, 30), false},
		{"higher x", V3(11, 0, 0), V3(10, 999, 999), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("Less(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec3CompareTotalOrder(t *testing.T) {
	a := V3(10, 20, 30)
	b := V3(10, 20, 30)
	if a.Compare(b) != 0 {
		t.Errorf("equal points should compare 0")
	}
	if a != b {
		t.Errorf("equal points should be == comparable for map-key use")
	}

	c := V3(10, 30, 20)
	if a.Compare(c) >= 0 {
		t.Errorf("(10,20,30) should sort before (10,30,20)")
	}
	if c.Compare(a) <= 0 {
		t.Errorf("(10,30,20) should sort after (10,20,30)")
	}
}

func TestVec3AsMapKey(t *testing.T) {
	m := map[Vec3]int{}
	m[V3(1, 2, 3)] = 1
	m[V3(1, 2, 3)] = 2
	if len(m) != 1 {
		t.Fatalf("expected a single key, got %d", len(m))
	}
	if m[V3(1, 2, 3)] != 2 {
		t.Errorf("expected last write to win")
	}
}
