package pep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	pixels := make([]uint32, 16*16)
	for i := range pixels {
		pixels[i] = uint32(i%13) * 0x01010101
	}
	img := Compress(pixels, 16, 16, FormatBGRA, ChannelBits8)

	data := img.Serialize()
	got := Deserialize(data)

	if diff := cmp.Diff(img, got); diff != "" {
		t.Fatalf("Deserialize(Serialize(img)) mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeSmallDimensionsFlag(t *testing.T) {
	pixels := []uint32{0x11223344, 0x55667788, 0x11223344, 0x55667788}
	img := Compress(pixels, 2, 2, FormatRGBA, ChannelBits8)

	data := img.Serialize()
	if data[0]&flagIsSmall == 0 {
		t.Fatal("expected flagIsSmall for a 2x2 image")
	}
	if data[1] != 1 || data[2] != 1 {
		t.Fatalf("dims = (%d, %d), want (1, 1)", data[1], data[2])
	}
}

func TestSerializeLargeDimensionsPacked(t *testing.T) {
	var img Image
	img.Width = 300
	img.Height = 10
	img.Format = FormatRGBA
	img.Palette[0] = 0x11223344
	img.PaletteSize = 1
	img.Bytes = []byte{1, 2, 3, 4}

	data := img.Serialize()
	if data[0]&flagIsSmall != 0 {
		t.Fatal("expected flagIsSmall unset for a 300-wide image")
	}

	back := Deserialize(data)
	if back.Width != 300 || back.Height != 10 {
		t.Fatalf("dims = (%d, %d), want (300, 10)", back.Width, back.Height)
	}
}

func TestSerializeEmptyImageIsNil(t *testing.T) {
	var img Image
	if got := img.Serialize(); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestDeserializeEmptyBufferIsZeroValue(t *testing.T) {
	got := Deserialize(nil)
	if got.Width != 0 || got.Height != 0 || got.Bytes != nil {
		t.Fatalf("expected zero-value Image, got %+v", got)
	}
}

func TestPaletteQuantizationRoundTrip(t *testing.T) {
	pixels := []uint32{0x10203040, 0x50607080, 0x10203040, 0x50607080}
	img := Compress(pixels, 2, 2, FormatRGBA, ChannelBits4)

	data := img.Serialize()
	back := Deserialize(data)

	scale := func(c byte) byte {
		v := c >> 4
		s := v << 4
		s |= s >> 4
		return s
	}
	want0 := uint32(scale(0x40)) | uint32(scale(0x30))<<8 | uint32(scale(0x20))<<16 | uint32(scale(0x10))<<24

	if back.Palette[0] != want0 {
		t.Fatalf("Palette[0] = %#x, want %#x", back.Palette[0], want0)
	}
}
