package pointcloud_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/zetetos/pointcloud"
	"github.com/zetetos/pointcloud/pkg/models"
)

type RecorderTestSuite struct {
	suite.Suite

	recorder *pointcloud.Recorder
	tmpDir   string
}

func TestRecorderTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RecorderTestSuite))
}

func (suite *RecorderTestSuite) SetupTest() {
	suite.tmpDir = suite.T().TempDir()
	suite.recorder = pointcloud.NewRecorder(zerolog.Nop())
}

func (suite *RecorderTestSuite) TearDownTest() {
	if suite.recorder.IsRecording() {
		_ = suite.recorder.StopRecording()
	}
}

func (suite *RecorderTestSuite) readBack(path string) []models.Point {
	var got []models.Point

	err := pointcloud.ReadFile(path, pointcloud.Options{LogLevel: "error", AllFrames: true}, func(r *pointcloud.Reader) error {
		for point, err := range r.Records() {
			if err != nil {
				return err
			}

			got = append(got, point)
		}

		return nil
	})
	suite.Require().NoError(err)

	return got
}

func (suite *RecorderTestSuite) TestStartRecording() {
	// Arrange
	path := filepath.Join(suite.tmpDir, "capture.dat.gz")

	// Act
	err := suite.recorder.StartRecording(path)

	// Assert
	suite.Require().NoError(err, "Failed to start recording")
	suite.True(suite.recorder.IsRecording(), "IsRecording should return true after starting recording")
	suite.NoError(suite.recorder.StopRecording(), "Failed to stop recording")
}

func (suite *RecorderTestSuite) TestInvalidFileExtension() {
	// Arrange
	path := filepath.Join(suite.tmpDir, "capture.txt")

	// Act
	err := suite.recorder.StartRecording(path)

	// Assert
	suite.Require().ErrorIs(err, pointcloud.ErrUnsupportedExtension)
	suite.False(suite.recorder.IsRecording())
}

func (suite *RecorderTestSuite) TestAlreadyRecording() {
	// Arrange
	err := suite.recorder.StartRecording(filepath.Join(suite.tmpDir, "first.dat"))
	suite.Require().NoError(err, "Failed to start first recording")

	// Act
	err = suite.recorder.StartRecording(filepath.Join(suite.tmpDir, "second.dat"))

	// Assert
	suite.Require().ErrorIs(err, pointcloud.ErrAlreadyRecording)
	suite.NoError(suite.recorder.StopRecording(), "Failed to stop recording")
}

func (suite *RecorderTestSuite) TestStopWhenNotRecording() {
	// Act
	err := suite.recorder.StopRecording()

	// Assert
	suite.ErrorIs(err, pointcloud.ErrNotRecording)
}

func (suite *RecorderTestSuite) TestWriteFrameWhenNotRecording() {
	// Act
	err := suite.recorder.WriteFrame([]models.Point{{X: 1}})

	// Assert
	suite.ErrorIs(err, pointcloud.ErrNotRecording)
}

func (suite *RecorderTestSuite) TestPlainRecordingReadsBack() {
	// Arrange
	path := filepath.Join(suite.tmpDir, "plain.dat")
	frames := [][]models.Point{
		{{X: 1, Y: 2, Z: 3, C: 0x00ff0000}},
		{{X: -4, Y: 0.5, Z: 9, C: 1}, {X: 0, Y: 0, Z: 0, C: 2}},
	}

	suite.Require().NoError(suite.recorder.StartRecording(path))

	// Act
	for _, frame := range frames {
		suite.Require().NoError(suite.recorder.WriteFrame(frame))
	}

	suite.Require().NoError(suite.recorder.StopRecording())

	// Assert
	info, err := os.Stat(path)
	suite.Require().NoError(err)
	suite.Equal(int64(2*models.HeaderSize+3*models.RecordSize), info.Size())
	suite.Equal(append(frames[0], frames[1]...), suite.readBack(path))
}

func (suite *RecorderTestSuite) TestGzipRecordingReadsBack() {
	// Arrange
	path := filepath.Join(suite.tmpDir, "compressed.dat.gz")
	frame := []models.Point{{X: 1.25, Y: -2.5, Z: 3.75, C: 42}}

	suite.Require().NoError(suite.recorder.StartRecording(path))

	// Act
	suite.Require().NoError(suite.recorder.WriteFrame(frame))
	suite.Require().NoError(suite.recorder.StopRecording())

	// Assert
	suite.Equal(1, suite.recorder.FramesWritten())
	suite.Equal(frame, suite.readBack(path))
}

func (suite *RecorderTestSuite) TestIsRecording() {
	suite.False(suite.recorder.IsRecording(), "IsRecording should return false initially")

	err := suite.recorder.StartRecording(filepath.Join(suite.tmpDir, "state.dat"))
	suite.Require().NoError(err)
	suite.True(suite.recorder.IsRecording())

	err = suite.recorder.StopRecording()
	suite.Require().NoError(err)
	suite.False(suite.recorder.IsRecording(), "IsRecording should return false after stopping recording")
}
