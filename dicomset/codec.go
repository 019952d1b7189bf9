package dicomset

import (
	"encoding/binary"
	"fmt"

	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/dicomset/pixel"
	"github.com/dcmpixel/dcmpixel/external"
)

// imageFromSamples builds a single-frame dcmimage.Image from decoded native
// samples, shared by every codec below.
func imageFromSamples(
	samples []byte,
	columns, rows int,
	samplesPerPixel uint16,
	photometricInterpretation string,
	bitsAllocated, bitsStored, highBit, pixelRepresentation uint16,
) (*dcmimage.Image, error) {
	depth := dcmimage.SmallestFor(int(highBit), pixelRepresentation == 1)
	img, err := dcmimage.New(columns, rows, photometricInterpretation, depth, int(highBit))
	if err != nil {
		return nil, err
	}

	bytesPerSample := (int(bitsAllocated) + 7) / 8
	count := rows * columns * int(samplesPerPixel)
	if len(samples) < count*bytesPerSample {
		return nil, fmt.Errorf("dicomset: decoded sample buffer too short: have %d bytes, need %d", len(samples), count*bytesPerSample)
	}

	wh := img.NewWriteHandler()
	for i := 0; i < count; i++ {
		var v int64
		switch bytesPerSample {
		case 1:
			raw := samples[i]
			if pixelRepresentation == 1 {
				v = int64(int8(raw))
			} else {
				v = int64(raw)
			}
		default:
			raw := binary.LittleEndian.Uint16(samples[i*2 : i*2+2])
			if pixelRepresentation == 1 {
				v = int64(int16(raw))
			} else {
				v = int64(raw)
			}
		}
		wh.Set(i, v)
	}
	wh.Release()
	return img, nil
}

func pixelInfoFrom(
	columns, rows int,
	samplesPerPixel uint16,
	photometricInterpretation string,
	bitsAllocated, bitsStored, highBit, pixelRepresentation uint16,
	transferSyntaxUID string,
) *pixel.PixelInfo {
	return &pixel.PixelInfo{
		Rows:                      uint16(rows),
		Columns:                   uint16(columns),
		BitsAllocated:             bitsAllocated,
		BitsStored:                bitsStored,
		HighBit:                   highBit,
		PixelRepresentation:       pixelRepresentation,
		SamplesPerPixel:           samplesPerPixel,
		PhotometricInterpretation: photometricInterpretation,
		NumberOfFrames:            1,
		TransferSyntaxUID:         transferSyntaxUID,
	}
}

// NativeCodec implements external.CodecFactory for the uncompressed transfer
// syntaxes (Implicit/Explicit VR Little Endian, Explicit VR Big Endian,
// Deflated Explicit VR Little Endian): it passes data through unchanged and
// builds an Image directly over it.
type NativeCodec struct{}

func (NativeCodec) DecodeFrame(
	data []byte,
	transferSyntaxUID string,
	columns, rows int,
	samplesPerPixel uint16,
	photometricInterpretation string,
	bitsAllocated, bitsStored, highBit, pixelRepresentation uint16,
) (*dcmimage.Image, error) {
	info := pixelInfoFrom(columns, rows, samplesPerPixel, photometricInterpretation,
		bitsAllocated, bitsStored, highBit, pixelRepresentation, transferSyntaxUID)
	d := &pixel.NativeDecoder{}
	samples, err := d.Decode(data, info)
	if err != nil {
		return nil, err
	}
	return imageFromSamples(samples, columns, rows, samplesPerPixel, photometricInterpretation,
		bitsAllocated, bitsStored, highBit, pixelRepresentation)
}

var _ external.CodecFactory = NativeCodec{}

// RLECodec implements external.CodecFactory for DICOM RLE Lossless
// (1.2.840.10008.1.2.5), adapting pixel.RLEDecoder's PackBits decompression
// to produce an Image instead of a raw byte slice.
type RLECodec struct{}

func (RLECodec) DecodeFrame(
	data []byte,
	transferSyntaxUID string,
	columns, rows int,
	samplesPerPixel uint16,
	photometricInterpretation string,
	bitsAllocated, bitsStored, highBit, pixelRepresentation uint16,
) (*dcmimage.Image, error) {
	info := pixelInfoFrom(columns, rows, samplesPerPixel, photometricInterpretation,
		bitsAllocated, bitsStored, highBit, pixelRepresentation, transferSyntaxUID)
	d := &pixel.RLEDecoder{}
	samples, err := d.Decode(data, info)
	if err != nil {
		return nil, err
	}
	return imageFromSamples(samples, columns, rows, samplesPerPixel, photometricInterpretation,
		bitsAllocated, bitsStored, highBit, pixelRepresentation)
}

var _ external.CodecFactory = RLECodec{}

// CodecFor resolves the CodecFactory registered for transferSyntaxUID among
// this package's built-in codecs. It does not consult pixel.GetDecoder's
// registry directly so that callers outside this package can select a codec
// without reaching into the pixel package.
func CodecFor(transferSyntaxUID string) (external.CodecFactory, error) {
	switch transferSyntaxUID {
	case "1.2.840.10008.1.2.5":
		return RLECodec{}, nil
	case "", "1.2.840.10008.1.2", "1.2.840.10008.1.2.1", "1.2.840.10008.1.2.2", "1.2.840.10008.1.2.1.99":
		return NativeCodec{}, nil
	default:
		return nil, fmt.Errorf("dicomset: no codec registered for transfer syntax %q", transferSyntaxUID)
	}
}
