package calibration

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrInvalidCalibration = errors.New("invalid calibration")

// Calibration holds the constants that turn raw 11-bit depth readings into
// metres and pixel positions into x/y offsets.
type Calibration struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MaxRawDepth uint16  `json:"maxRawDepth"`
	DepthFactor float32 `json:"depthFactor"`
	DepthScale  float32 `json:"depthScale"`
	DepthOffset float32 `json:"depthOffset"`
	MinDistance float32 `json:"minDistance"`
	ScaleFactor float32 `json:"scaleFactor"`
}

//go:embed schema/calibration-schema.json
var schemaJSON []byte

// Default returns the calibration of a 640x480 Kinect depth sensor.
func Default() Calibration {
	return Calibration{
		Width:       640,
		Height:      480,
		MaxRawDepth: 2047,
		DepthFactor: 0.1236,
		DepthScale:  1.0 / 2842.5,
		DepthOffset: 1.1863,
		MinDistance: -10.0,
		ScaleFactor: 0.0021,
	}
}

// Load reads a calibration JSON file. An empty path returns Default.
func Load(path string) (Calibration, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, fmt.Errorf("read calibration file: %w", err)
	}

	return Parse(data)
}

// Parse validates a calibration document against the embedded schema. Fields
// missing from the document keep their default values.
func Parse(data []byte) (Calibration, error) {
	schema, err := compileSchema()
	if err != nil {
		return Calibration{}, err
	}

	var document any

	err = json.Unmarshal(data, &document)
	if err != nil {
		return Calibration{}, fmt.Errorf("%w: unmarshal calibration JSON: %w", ErrInvalidCalibration, err)
	}

	err = schema.Validate(document)
	if err != nil {
		return Calibration{}, fmt.Errorf("%w: %w", ErrInvalidCalibration, err)
	}

	cal := Default()

	err = json.Unmarshal(data, &cal)
	if err != nil {
		return Calibration{}, fmt.Errorf("%w: unmarshal calibration JSON: %w", ErrInvalidCalibration, err)
	}

	return cal, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	err := compiler.AddResource("calibration-schema.json", bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := compiler.Compile("calibration-schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
}
