package dcmimage

// OverlayType distinguishes a graphic annotation overlay from a
// region-of-interest overlay.
type OverlayType int

const (
	OverlayGraphic OverlayType = iota
	OverlayROI
)

// Overlay is a 1-bit bitplane image bound to a range of frames of a base
// image (DICOM PS3.3 C.9.2, overlay group 60xx).
type Overlay struct {
	Type       OverlayType
	FirstFrame int // 0-based
	FrameCount int

	originX int // 0-based
	originY int // 0-based

	Subtype     string
	Label       string
	Description string

	roiArea   *int
	roiMean   *float64
	roiStdDev *float64

	frames []*Image
}

// NewOverlay allocates an Overlay of frameCount single-channel U8 images,
// each width x height with high bit 0 (a 1-bit plane stored one bit per
// byte).
func NewOverlay(overlayType OverlayType, firstFrame, frameCount, width, height int) (*Overlay, error) {
	if frameCount < 1 {
		frameCount = 1
	}
	frames := make([]*Image, frameCount)
	for i := range frames {
		img, err := New(width, height, "MONOCHROME2", U8, 0)
		if err != nil {
			return nil, err
		}
		frames[i] = img
	}
	return &Overlay{
		Type:       overlayType,
		FirstFrame: firstFrame,
		FrameCount: frameCount,
		frames:     frames,
	}, nil
}

// OriginX returns the 0-based horizontal pixel offset into the base image.
func (o *Overlay) OriginX() int { return o.originX }

// OriginY returns the 0-based vertical pixel offset into the base image.
func (o *Overlay) OriginY() int { return o.originY }

// OriginX1 returns the 1-based horizontal offset (DICOM's native encoding).
func (o *Overlay) OriginX1() int { return o.originX + 1 }

// OriginY1 returns the 1-based vertical offset (DICOM's native encoding).
func (o *Overlay) OriginY1() int { return o.originY + 1 }

// SetOrigin sets the 0-based origin.
func (o *Overlay) SetOrigin(x, y int) { o.originX, o.originY = x, y }

// SetOrigin1 sets the origin from 1-based DICOM coordinates.
func (o *Overlay) SetOrigin1(x, y int) { o.originX, o.originY = x-1, y-1 }

// Frame returns the bitplane image for frame index i (0-based, relative to
// the overlay's own frame range).
func (o *Overlay) Frame(i int) *Image { return o.frames[i] }

// ROIArea returns the ROI's computed pixel area. It fails with
// ErrMissingTag when the statistic was never set; the overlay's Type is not
// checked.
func (o *Overlay) ROIArea() (int, error) {
	if o.roiArea == nil {
		return 0, ErrMissingTag
	}
	return *o.roiArea, nil
}

// SetROIArea sets the ROI area statistic.
func (o *Overlay) SetROIArea(v int) { o.roiArea = &v }

// ROIMean returns the ROI's mean pixel value, or ErrMissingTag if absent.
func (o *Overlay) ROIMean() (float64, error) {
	if o.roiMean == nil {
		return 0, ErrMissingTag
	}
	return *o.roiMean, nil
}

// SetROIMean sets the ROI mean statistic.
func (o *Overlay) SetROIMean(v float64) { o.roiMean = &v }

// ROIStdDev returns the ROI's pixel value standard deviation, or
// ErrMissingTag if absent.
func (o *Overlay) ROIStdDev() (float64, error) {
	if o.roiStdDev == nil {
		return 0, ErrMissingTag
	}
	return *o.roiStdDev, nil
}

// SetROIStdDev sets the ROI standard-deviation statistic.
func (o *Overlay) SetROIStdDev(v float64) { o.roiStdDev = &v }
