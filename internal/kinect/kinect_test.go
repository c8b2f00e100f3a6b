package kinect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/zetetos/pointcloud/internal/calibration"
	"github.com/zetetos/pointcloud/internal/kinect"
	"github.com/zetetos/pointcloud/pkg/models"
)

type KinectTestSuite struct {
	suite.Suite

	cal       calibration.Calibration
	converter *kinect.Converter
}

func TestKinectTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(KinectTestSuite))
}

func (suite *KinectTestSuite) SetupTest() {
	suite.cal = calibration.Default()
	suite.cal.Width = 4
	suite.cal.Height = 2
	suite.converter = kinect.NewConverter(suite.cal)
}

func (suite *KinectTestSuite) blankFrame() kinect.Frame {
	pixels := suite.cal.Width * suite.cal.Height
	frame := kinect.Frame{
		Depth: make([]uint16, pixels),
		RGB:   make([]byte, pixels*3),
	}

	for i := range frame.Depth {
		frame.Depth[i] = suite.cal.MaxRawDepth
	}

	return frame
}

func (suite *KinectTestSuite) TestDepthMetresMatchesFormula() {
	// Arrange
	raw := uint16(700)
	want := 0.1236 * math.Tan(700.0/2842.5+1.1863)

	// Act
	got := suite.converter.DepthMetres(raw)

	// Assert
	suite.InDelta(want, float64(got), 1e-5)
}

func (suite *KinectTestSuite) TestOutOfRangeDepthIsDropped() {
	// Arrange
	frame := suite.blankFrame()

	// Act
	points, err := suite.converter.Convert(frame)

	// Assert
	suite.Require().NoError(err)
	suite.Empty(points)
}

func (suite *KinectTestSuite) TestPixelPositionAndColour() {
	// Arrange
	frame := suite.blankFrame()
	pixel := 1*suite.cal.Width + 3
	frame.Depth[pixel] = 600
	frame.RGB[pixel*3] = 10
	frame.RGB[pixel*3+1] = 20
	frame.RGB[pixel*3+2] = 30

	z := suite.converter.DepthMetres(600)
	scale := (z + suite.cal.MinDistance) * suite.cal.ScaleFactor

	// Act
	points, err := suite.converter.Convert(frame)

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Equal(float32(1)*scale, points[0].X)
	suite.Equal(float32(0)*scale, points[0].Y)
	suite.Equal(z, points[0].Z)
	suite.Equal(models.Colour{R: 10, G: 20, B: 30}, points[0].Colour())
}

func (suite *KinectTestSuite) TestPointsFollowRowMajorOrder() {
	// Arrange
	frame := suite.blankFrame()
	frame.Depth[0] = 500
	frame.Depth[5] = 501

	// Act
	points, err := suite.converter.Convert(frame)

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(points, 2)
	suite.Equal(suite.converter.DepthMetres(500), points[0].Z)
	suite.Equal(suite.converter.DepthMetres(501), points[1].Z)
}

func (suite *KinectTestSuite) TestWrongDepthSizeReturnsError() {
	// Arrange
	frame := suite.blankFrame()
	frame.Depth = frame.Depth[1:]

	// Act
	_, err := suite.converter.Convert(frame)

	// Assert
	suite.ErrorIs(err, kinect.ErrFrameSize)
}

func (suite *KinectTestSuite) TestWrongColourSizeReturnsError() {
	// Arrange
	frame := suite.blankFrame()
	frame.RGB = append(frame.RGB, 0)

	// Act
	_, err := suite.converter.Convert(frame)

	// Assert
	suite.ErrorIs(err, kinect.ErrFrameSize)
}
