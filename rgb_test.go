package vibrant

import (
	"image"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FF0000", RGB{255, 0, 0}, false},
		{"00abcd", RGB{0, 171, 205}, false},
		{" #123456 ", RGB{0x12, 0x34, 0x56}, false},
		{"#12345", RGB{}, true},
		{"#GG0000", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexIsUppercase(t *testing.T) {
	if got := (RGB{0xab, 0x0c, 0xde}).Hex(); got != "#AB0CDE" {
		t.Errorf("got %s", got)
	}
}

func TestRGBFromColor(t *testing.T) {
	// Premultiplied half transparent red un-premultiplies to full red.
	got := RGBFromColor(color.RGBA{R: 128, A: 128})
	if got != (RGB{255, 0, 0}) {
		t.Errorf("got %v", got)
	}
}

func TestFromImageOffset(t *testing.T) {
	img := image.NewNRGBA(image.Rect(3, 4, 6, 8))
	img.SetNRGBA(3, 4, color.NRGBA{1, 2, 3, 4})

	src := FromImage(img)
	if src.Width() != 3 || src.Height() != 4 {
		t.Fatalf("size %dx%d", src.Width(), src.Height())
	}
	if got := src.NRGBAAt(0, 0); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("got %v", got)
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 77
	if got := FromImage(gray).NRGBAAt(0, 0); got != (color.NRGBA{77, 77, 77, 255}) {
		t.Errorf("gray: got %v", got)
	}
}
