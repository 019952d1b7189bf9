// Package pixel decodes raw DICOM Pixel Data into a flat native sample
// buffer, given the pixel-description attributes (Rows, Columns, Bits
// Allocated/Stored, High Bit, Samples Per Pixel, Photometric
// Interpretation, Pixel Representation) collected into a PixelInfo.
//
// # Decoder Registry
//
// Decode implementations register themselves against a transfer syntax UID
// at init time:
//
//	pixel.RegisterDecoder("1.2.3.4.5.6.7", myCustomDecoder)
//
// NativeDecoder (the default for any uncompressed transfer syntax) and
// RLEDecoder (DICOM RLE Lossless, 1.2.840.10008.1.2.5) are registered this
// way by this package itself. Encapsulated transfer syntaxes beyond RLE
// (JPEG family, JPEG 2000/HTJ2K) have no decoder: GetDecoder returns a
// *TransferSyntaxError (matching ErrUnsupportedTransferSyntax) for any
// unregistered UID, and dicomset's DataSet.FrameImage then falls back to
// NativeDecoder, treating the bytes as raw/native samples.
//
// Package dicomset builds each frame's dcmimage.Image directly from the
// flat sample buffer this package returns; color-space, VOI/LUT, and
// rescale transformations are not this package's concern — they live in
// colortransform, voilut, and chain, operating on the resulting Image.
package pixel
