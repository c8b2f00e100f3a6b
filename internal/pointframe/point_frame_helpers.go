package pointframe

import (
	"bytes"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"

	"github.com/zetetos/pointcloud/pkg/models"
)

// ReadHeader reads the record count that starts every frame.
func ReadHeader(io *kaitai.Stream) (uint32, error) { //nolint:varnamelen // matches kaitai generated code style
	raw, err := io.ReadBytes(models.HeaderSize)
	if err != nil {
		return 0, err
	}

	return kaitai.NewStream(bytes.NewReader(raw)).ReadU4le()
}

// ReadPoint reads a whole record before decoding it, so a short record never
// produces a partially decoded point.
func ReadPoint(io *kaitai.Stream) (*PointFrame_Point, error) { //nolint:varnamelen // matches kaitai generated code style
	raw, err := io.ReadBytes(models.RecordSize)
	if err != nil {
		return nil, err
	}

	point := NewPointFrame_Point()

	err = point.Read(kaitai.NewStream(bytes.NewReader(raw)), nil, nil)
	if err != nil {
		return nil, err
	}

	return point, nil
}

// Model converts the decoded record into the public point type.
func (this *PointFrame_Point) Model() models.Point { //nolint:revive,staticcheck // matches kaitai generated code style
	return models.Point{
		X: this.X,
		Y: this.Y,
		Z: this.Z,
		C: this.C,
	}
}

// Models converts every decoded record of the frame.
func (this *PointFrame) Models() []models.Point { //nolint:revive,staticcheck // matches kaitai generated code style
	points := make([]models.Point, 0, len(this.Points))
	for _, point := range this.Points {
		points = append(points, point.Model())
	}

	return points
}
