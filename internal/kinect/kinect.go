package kinect

import (
	"errors"
	"fmt"
	"math"

	"github.com/zetetos/pointcloud/internal/calibration"
	"github.com/zetetos/pointcloud/pkg/models"
)

var ErrFrameSize = errors.New("frame buffer does not match calibration size")

// Frame is one raw capture: 11-bit depth readings and packed RGB bytes, both
// in row-major pixel order.
type Frame struct {
	Depth []uint16
	RGB   []byte
}

// Converter turns raw frames into points using a calibration.
type Converter struct {
	cal calibration.Calibration
}

func NewConverter(cal calibration.Calibration) *Converter {
	return &Converter{cal: cal}
}

// DepthMetres converts a raw depth reading to metres.
func (c *Converter) DepthMetres(raw uint16) float32 {
	return c.cal.DepthFactor * float32(math.Tan(float64(float32(raw)*c.cal.DepthScale+c.cal.DepthOffset)))
}

// Convert returns one point per pixel whose raw depth is below MaxRawDepth.
// The auxiliary value of each point is the pixel colour packed as RGB0.
func (c *Converter) Convert(frame Frame) ([]models.Point, error) {
	pixels := c.cal.Width * c.cal.Height

	if len(frame.Depth) != pixels {
		return nil, fmt.Errorf("%w: %d depth values for %dx%d", ErrFrameSize, len(frame.Depth), c.cal.Width, c.cal.Height)
	}

	if len(frame.RGB) != pixels*3 {
		return nil, fmt.Errorf("%w: %d colour bytes for %dx%d", ErrFrameSize, len(frame.RGB), c.cal.Width, c.cal.Height)
	}

	halfWidth := c.cal.Width / 2
	halfHeight := c.cal.Height / 2
	points := make([]models.Point, 0, pixels)

	for py := range c.cal.Height {
		for px := range c.cal.Width {
			pixel := py*c.cal.Width + px

			raw := frame.Depth[pixel]
			if raw >= c.cal.MaxRawDepth {
				continue
			}

			z := c.DepthMetres(raw)
			scale := (z + c.cal.MinDistance) * c.cal.ScaleFactor
			colour := models.Colour{
				R: frame.RGB[pixel*3],
				G: frame.RGB[pixel*3+1],
				B: frame.RGB[pixel*3+2],
			}

			points = append(points, models.Point{
				X: float32(px-halfWidth) * scale,
				Y: float32(py-halfHeight) * scale,
				Z: z,
				C: colour.Pack(),
			})
		}
	}

	return points, nil
}
