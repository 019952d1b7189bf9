package dicomset

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/dicomset/pixel"
	"github.com/dcmpixel/dcmpixel/dicomset/tag"
	"github.com/dcmpixel/dcmpixel/dicomset/value"
	"github.com/dcmpixel/dcmpixel/external"
)

// Tags this file reads directly by (group, element) rather than through the
// dictionary, since they're a small, fixed set the pixel subsystem always
// needs regardless of what else the dictionary knows about.
var (
	tagRows                         = tag.New(0x0028, 0x0010)
	tagColumns                      = tag.New(0x0028, 0x0011)
	tagSamplesPerPixel              = tag.New(0x0028, 0x0002)
	tagPhotometricInterpretation    = tag.New(0x0028, 0x0004)
	tagPlanarConfiguration          = tag.New(0x0028, 0x0006)
	tagNumberOfFrames               = tag.New(0x0028, 0x0008)
	tagBitsAllocated                = tag.New(0x0028, 0x0100)
	tagBitsStored                   = tag.New(0x0028, 0x0101)
	tagHighBit                      = tag.New(0x0028, 0x0102)
	tagPixelRepresentation          = tag.New(0x0028, 0x0103)
	tagWindowCenter                 = tag.New(0x0028, 0x1050)
	tagWindowWidth                  = tag.New(0x0028, 0x1051)
	tagRescaleIntercept              = tag.New(0x0028, 0x1052)
	tagRescaleSlope                  = tag.New(0x0028, 0x1053)
	tagWindowCenterWidthExplanation = tag.New(0x0028, 0x1055)
	tagRedLUTData                   = tag.New(0x0028, 0x1201)
	tagGreenLUTData                 = tag.New(0x0028, 0x1202)
	tagBlueLUTData                  = tag.New(0x0028, 0x1203)
	tagPixelData                    = tag.New(0x7FE0, 0x0010)
	tagTransferSyntaxUID             = tag.New(0x0002, 0x0010)
)

// ErrMissingAttribute indicates a required pixel-description attribute was
// absent from the dataset.
type ErrMissingAttribute struct{ Keyword string }

func (e *ErrMissingAttribute) Error() string {
	return fmt.Sprintf("dicomset: missing required attribute %s", e.Keyword)
}

func (ds *DataSet) getUint16(t tag.Tag, keyword string) (uint16, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return 0, &ErrMissingAttribute{Keyword: keyword}
	}
	iv, ok := elem.Value().(*value.IntValue)
	if !ok || len(iv.Ints()) == 0 {
		return 0, &ErrMissingAttribute{Keyword: keyword}
	}
	return uint16(iv.Ints()[0]), nil
}

func (ds *DataSet) getString(t tag.Tag, keyword string) (string, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return "", &ErrMissingAttribute{Keyword: keyword}
	}
	sv, ok := elem.Value().(*value.StringValue)
	if !ok || len(sv.Strings()) == 0 {
		return "", &ErrMissingAttribute{Keyword: keyword}
	}
	return sv.Strings()[0], nil
}

// getFloats reads a multi-valued decimal-string attribute (e.g. Window
// Center, stored as VR DS, a string VR in this model) as floats.
func (ds *DataSet) getFloats(t tag.Tag) ([]float64, bool) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, false
	}
	switch v := elem.Value().(type) {
	case *value.FloatValue:
		return v.Floats(), true
	case *value.StringValue:
		out := make([]float64, 0, len(v.Strings()))
		for _, s := range v.Strings() {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, false
			}
			out = append(out, f)
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}

func (ds *DataSet) getStrings(t tag.Tag) ([]string, bool) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, false
	}
	sv, ok := elem.Value().(*value.StringValue)
	if !ok {
		return nil, false
	}
	return sv.Strings(), true
}

// pixelInfo builds the pixel.PixelInfo the decoder registry expects from
// this dataset's (0028,xxxx) attributes.
func (ds *DataSet) pixelInfo() (*pixel.PixelInfo, error) {
	rows, err := ds.getUint16(tagRows, "Rows")
	if err != nil {
		return nil, err
	}
	columns, err := ds.getUint16(tagColumns, "Columns")
	if err != nil {
		return nil, err
	}
	bitsAllocated, err := ds.getUint16(tagBitsAllocated, "BitsAllocated")
	if err != nil {
		return nil, err
	}
	bitsStored, err := ds.getUint16(tagBitsStored, "BitsStored")
	if err != nil {
		return nil, err
	}
	highBit, err := ds.getUint16(tagHighBit, "HighBit")
	if err != nil {
		return nil, err
	}
	pixelRepresentation, err := ds.getUint16(tagPixelRepresentation, "PixelRepresentation")
	if err != nil {
		return nil, err
	}
	samplesPerPixel, err := ds.getUint16(tagSamplesPerPixel, "SamplesPerPixel")
	if err != nil {
		return nil, err
	}
	photometric, err := ds.getString(tagPhotometricInterpretation, "PhotometricInterpretation")
	if err != nil {
		return nil, err
	}
	planar, _ := ds.getUint16(tagPlanarConfiguration, "PlanarConfiguration")
	frames, err := ds.getUint16(tagNumberOfFrames, "NumberOfFrames")
	if err != nil {
		frames = 1
	}
	transferSyntax, _ := ds.getString(tagTransferSyntaxUID, "TransferSyntaxUID")

	return &pixel.PixelInfo{
		Rows:                      rows,
		Columns:                   columns,
		BitsAllocated:             bitsAllocated,
		BitsStored:                bitsStored,
		HighBit:                   highBit,
		PixelRepresentation:       pixelRepresentation,
		SamplesPerPixel:           samplesPerPixel,
		PhotometricInterpretation: photometric,
		PlanarConfiguration:       planar,
		NumberOfFrames:            int(frames),
		TransferSyntaxUID:         transferSyntax,
	}, nil
}

// NumberOfFrames returns the dataset's (0028,0008) Number of Frames,
// defaulting to 1 when absent, so a caller can iterate FrameImage without
// reaching into the pixel-description attributes directly.
func (ds *DataSet) NumberOfFrames() (int, error) {
	info, err := ds.pixelInfo()
	if err != nil {
		return 0, err
	}
	return info.NumberOfFrames, nil
}

// FrameImage implements external.DatasetSource. It decodes the Pixel Data
// element through the registered pixel.Decoder for the dataset's transfer
// syntax (native and RLE Lossless are registered by the pixel package's
// init), then builds a dcmimage.Image over frame's native samples. When no
// decoder is registered for the transfer syntax (e.g. a JPEG-family
// syntax), it falls back to pixel.NativeDecoder rather than returning an
// error.
func (ds *DataSet) FrameImage(frame int) (*dcmimage.Image, error) {
	info, err := ds.pixelInfo()
	if err != nil {
		return nil, err
	}
	if frame < 0 || frame >= info.NumberOfFrames {
		return nil, fmt.Errorf("dicomset: frame %d out of range [0,%d)", frame, info.NumberOfFrames)
	}

	elem, err := ds.Get(tagPixelData)
	if err != nil {
		return nil, &ErrMissingAttribute{Keyword: "PixelData"}
	}
	bv, ok := elem.Value().(*value.BytesValue)
	if !ok {
		return nil, fmt.Errorf("dicomset: PixelData has unexpected value type %T", elem.Value())
	}

	decoder, err := pixel.GetDecoder(info.TransferSyntaxUID)
	if err != nil {
		decoder = &pixel.NativeDecoder{}
	}
	native, err := decoder.Decode(bv.Bytes(), info)
	if err != nil {
		return nil, err
	}

	bytesPerSample := (int(info.BitsAllocated) + 7) / 8
	frameSize := int(info.Rows) * int(info.Columns) * int(info.SamplesPerPixel) * bytesPerSample
	start := frame * frameSize
	if start+frameSize > len(native) {
		return nil, fmt.Errorf("dicomset: decoded pixel data too short for frame %d", frame)
	}
	frameBytes := native[start : start+frameSize]

	return imageFromSamples(frameBytes, int(info.Columns), int(info.Rows), info.SamplesPerPixel,
		info.PhotometricInterpretation, info.BitsAllocated, info.BitsStored, info.HighBit, info.PixelRepresentation)
}

// ModalityRescale implements external.DatasetSource via the flat Rescale
// Intercept/Slope attributes (DICOM PS3.3 C.11.1).
func (ds *DataSet) ModalityRescale() (slope, intercept float64, ok bool) {
	s, sOK := ds.getFloats(tagRescaleSlope)
	i, iOK := ds.getFloats(tagRescaleIntercept)
	if !sOK || !iOK || len(s) == 0 || len(i) == 0 {
		return 0, 0, false
	}
	return s[0], i[0], true
}

// VOIList implements external.DatasetSource via the dataset's (possibly
// multi-valued) Window Center/Window Width pair, paired positionally with
// Window Center & Width Explanation when present.
func (ds *DataSet) VOIList() (dcmimage.VOIList, error) {
	centers, ok := ds.getFloats(tagWindowCenter)
	if !ok {
		return nil, nil
	}
	widths, ok := ds.getFloats(tagWindowWidth)
	if !ok || len(widths) != len(centers) {
		return nil, fmt.Errorf("dicomset: Window Center/Width value count mismatch")
	}
	explanations, _ := ds.getStrings(tagWindowCenterWidthExplanation)

	out := make(dcmimage.VOIList, len(centers))
	for i := range centers {
		desc := dcmimage.VOIDescription{Center: centers[i], Width: widths[i], Function: dcmimage.VOILinear}
		if i < len(explanations) {
			desc.Description = explanations[i]
		}
		out[i] = desc
	}
	return out, nil
}

// Palette implements external.DatasetSource via the flat Red/Green/Blue
// Palette Color Lookup Table Data attributes. The descriptor (first
// mapped index, size, bits) is not separately modeled by this adapter;
// Palette assumes an 8-bit LUT rooted at index 0 sized to the data present,
// matching the common case for PALETTE COLOR images this renderer targets.
func (ds *DataSet) Palette() (*dcmimage.Palette, error) {
	red, err := ds.paletteLUT(tagRedLUTData)
	if err != nil {
		return nil, err
	}
	green, err := ds.paletteLUT(tagGreenLUTData)
	if err != nil {
		return nil, err
	}
	blue, err := ds.paletteLUT(tagBlueLUTData)
	if err != nil {
		return nil, err
	}
	return dcmimage.NewPalette(red, green, blue)
}

func (ds *DataSet) paletteLUT(t tag.Tag) (*dcmimage.LUT, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, &ErrMissingAttribute{Keyword: t.String()}
	}
	entries, err := decodeLUTEntries(elem.Value())
	if err != nil {
		return nil, err
	}
	lut := dcmimage.NewLUT(8, len(entries), 0, "")
	for i, v := range entries {
		lut.Set(i, v)
	}
	return lut, nil
}

// decodeLUTEntries reads a LUT Data value as a list of raw entries,
// accepting either an already-decoded IntValue (VR US) or a packed
// BytesValue (VR OW, little-endian uint16 entries).
func decodeLUTEntries(v value.Value) ([]uint32, error) {
	switch vv := v.(type) {
	case *value.IntValue:
		out := make([]uint32, len(vv.Ints()))
		for i, x := range vv.Ints() {
			out[i] = uint32(x)
		}
		return out, nil
	case *value.BytesValue:
		raw := vv.Bytes()
		out := make([]uint32, len(raw)/2)
		for i := range out {
			out[i] = uint32(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("dicomset: LUT data has unexpected value type %T", v)
	}
}

// Overlay, LUT, and FunctionalGroup are not implemented: this dataset model
// stores elements flatly (no nested Sequence-of-Items value), so the
// Modality/VOI LUT Sequence and Per-Frame Functional Groups Sequence
// attributes these operations need have nowhere to live. They return
// ErrSequenceNotSupported rather than silently returning wrong data.
var ErrSequenceNotSupported = fmt.Errorf("dicomset: sequence-nested attributes are not supported by this dataset model")

func (ds *DataSet) Overlay(group uint16) (*dcmimage.Overlay, error) {
	return nil, ErrSequenceNotSupported
}

func (ds *DataSet) LUT(group, element uint16) (*dcmimage.LUT, error) {
	return nil, ErrSequenceNotSupported
}

func (ds *DataSet) FunctionalGroup(frame int) (external.DatasetSource, error) {
	return nil, ErrSequenceNotSupported
}

var _ external.DatasetSource = (*DataSet)(nil)
