package components

import "testing"

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		name  string
		total int
		n     int
		want  []int
	}{
		{"even split", 90, 3, []int{30, 30, 30}},
		{"remainder to first", 91, 3, []int{31, 30, 30}},
		{"two extra", 92, 3, []int{31, 31, 30}},
		{"single", 40, 1, []int{40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutRow(tt.total, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			sum := 0
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
				sum += got[i]
			}
			if sum != tt.total {
				t.Fatalf("widths sum to %d, want %d", sum, tt.total)
			}
		})
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}
