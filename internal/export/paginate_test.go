package export

import "testing"

func TestPaginate(t *testing.T) {
	// pageW 100pt x pageH 200pt at raster width 500 → one page covers 1000
	// raster pixels of height.
	tests := []struct {
		name    string
		rasterH int
		want    []band
	}{
		{"single short page", 800, []band{{0, 800}}},
		{"exactly one page", 1000, []band{{0, 1000}}},
		{"exactly two pages", 2000, []band{{0, 1000}, {1000, 1000}}},
		{"two and a half pages", 2500, []band{{0, 1000}, {1000, 1000}, {2000, 500}}},
		{"just over one page", 1001, []band{{0, 1000}, {1000, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(500, tt.rasterH, 100, 200)
			if len(got) != len(tt.want) {
				t.Fatalf("bands = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("band[%d] = %+v, want %+v", i, got[i], w)
				}
			}
		})
	}
}

func TestPaginateCoversRaster(t *testing.T) {
	// Bands tile the raster top to bottom with no gap before the next band.
	bands := paginate(1587, 5489, 595.28, 841.89)
	if len(bands) == 0 {
		t.Fatal("no bands")
	}
	if bands[0].Y != 0 {
		t.Errorf("first band starts at %d", bands[0].Y)
	}
	for i := 1; i < len(bands); i++ {
		prevEnd := bands[i-1].Y + bands[i-1].H
		if bands[i].Y > prevEnd {
			t.Errorf("gap before band %d: ends %d, next starts %d", i, prevEnd, bands[i].Y)
		}
	}
	last := bands[len(bands)-1]
	if last.Y+last.H < 5489 {
		t.Errorf("bands stop at %d, raster is 5489 tall", last.Y+last.H)
	}
}

func TestPaginateDegenerate(t *testing.T) {
	if got := paginate(0, 100, 100, 200); got != nil {
		t.Errorf("zero width: %v, want nil", got)
	}
	if got := paginate(100, 0, 100, 200); got != nil {
		t.Errorf("zero height: %v, want nil", got)
	}
	if got := paginate(100, 100, 0, 200); got != nil {
		t.Errorf("zero page width: %v, want nil", got)
	}
}
