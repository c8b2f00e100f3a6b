package main

import (
	"github.com/zetetos/pointcloud/internal/calibration"
	"github.com/zetetos/pointcloud/internal/kinect"
)

// synthesizeFrame renders a tilted plane that drifts with the frame number.
// The outer border has no depth reading, like the shadowed edge of a real
// depth sensor.
func synthesizeFrame(cal calibration.Calibration, frame int) kinect.Frame {
	pixels := cal.Width * cal.Height
	out := kinect.Frame{
		Depth: make([]uint16, pixels),
		RGB:   make([]byte, pixels*3),
	}

	border := min(cal.Width, cal.Height) / 16

	for py := range cal.Height {
		for px := range cal.Width {
			pixel := py*cal.Width + px

			if px < border || py < border || px >= cal.Width-border || py >= cal.Height-border {
				out.Depth[pixel] = cal.MaxRawDepth
			} else {
				out.Depth[pixel] = uint16((400 + px/2 + py/4 + frame*8) % int(cal.MaxRawDepth)) //nolint:gosec // bounded by MaxRawDepth
			}

			out.RGB[pixel*3] = byte(px * 255 / max(cal.Width-1, 1))
			out.RGB[pixel*3+1] = byte(py * 255 / max(cal.Height-1, 1))
			out.RGB[pixel*3+2] = byte(frame * 32)
		}
	}

	return out
}
