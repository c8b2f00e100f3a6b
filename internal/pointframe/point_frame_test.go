package pointframe_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/stretchr/testify/suite"

	"github.com/zetetos/pointcloud/internal/pointframe"
	"github.com/zetetos/pointcloud/pkg/models"
)

type PointFrameTestSuite struct {
	suite.Suite
}

func TestPointFrameTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PointFrameTestSuite))
}

func encodeFrame(count uint32, points ...models.Point) []byte {
	buf := make([]byte, 0, models.HeaderSize+len(points)*models.RecordSize)
	buf = binary.LittleEndian.AppendUint32(buf, count)

	for _, p := range points {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.X))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.Y))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(p.Z))
		buf = binary.LittleEndian.AppendUint32(buf, p.C)
	}

	return buf
}

func (suite *PointFrameTestSuite) TestReadDecodesWholeFrame() {
	// Arrange
	want := []models.Point{
		{X: 1.0, Y: 2.0, Z: 3.0, C: 7},
		{X: 4.5, Y: -1.25, Z: 0.0, C: 0},
	}
	stream := kaitai.NewStream(bytes.NewReader(encodeFrame(2, want...)))
	frame := pointframe.NewPointFrame()

	// Act
	err := frame.Read(stream, nil, frame)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(uint32(2), frame.NumPoints)
	suite.Equal(want, frame.Models())
}

func (suite *PointFrameTestSuite) TestReadEmptyFrame() {
	// Arrange
	stream := kaitai.NewStream(bytes.NewReader(encodeFrame(0)))
	frame := pointframe.NewPointFrame()

	// Act
	err := frame.Read(stream, nil, frame)

	// Assert
	suite.Require().NoError(err)
	suite.Empty(frame.Models())
}

func (suite *PointFrameTestSuite) TestReadHeaderShortInputReturnsError() {
	// Arrange
	stream := kaitai.NewStream(bytes.NewReader([]byte{0x01, 0x00}))

	// Act
	_, err := pointframe.ReadHeader(stream)

	// Assert
	suite.ErrorIs(err, io.ErrUnexpectedEOF)
}

func (suite *PointFrameTestSuite) TestReadPointShortRecordReturnsError() {
	// Arrange
	data := encodeFrame(1, models.Point{X: 1, Y: 2, Z: 3, C: 4})
	stream := kaitai.NewStream(bytes.NewReader(data[models.HeaderSize : len(data)-1]))

	// Act
	point, err := pointframe.ReadPoint(stream)

	// Assert
	suite.Require().Error(err)
	suite.Nil(point)
}

func (suite *PointFrameTestSuite) TestReadPointKeepsFloatBitPatterns() {
	// Arrange
	nan := math.Float32frombits(0x7fc00001)
	data := encodeFrame(1, models.Point{X: nan, Y: float32(math.Inf(1)), Z: float32(math.Inf(-1)), C: math.MaxUint32})
	stream := kaitai.NewStream(bytes.NewReader(data[models.HeaderSize:]))

	// Act
	point, err := pointframe.ReadPoint(stream)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(uint32(0x7fc00001), math.Float32bits(point.X))
	suite.True(math.IsInf(float64(point.Y), 1))
	suite.True(math.IsInf(float64(point.Z), -1))
	suite.Equal(uint32(math.MaxUint32), point.C)
}
