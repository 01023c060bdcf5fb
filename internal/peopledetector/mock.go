package peopledetector

import (
	"context"

	"go.viam.com/rdk/components/camera"
	"go.viam.com/rdk/services/vision"
	"go.viam.com/rdk/vision/objectdetection"
)

// MockVision is a test implementation of the vision service collaborator.
// It allows tests to control the detection results. The embedded interface
// covers the service methods this component never calls.
type MockVision struct {
	vision.Service

	detections []objectdetection.Detection
	err        error
	block      bool

	// LastCameraName records the camera name of the most recent
	// DetectionsFromCamera call.
	LastCameraName string
}

// NewMockVision creates a new MockVision instance.
func NewMockVision() *MockVision {
	return &MockVision{}
}

// SetDetections sets the detections that will be returned by DetectionsFromCamera.
func (m *MockVision) SetDetections(detections []objectdetection.Detection) {
	m.detections = detections
}

// SetError sets the error that will be returned by DetectionsFromCamera.
func (m *MockVision) SetError(err error) {
	m.err = err
}

// SetBlocking makes DetectionsFromCamera wait for context cancellation and
// return the context's error.
func (m *MockVision) SetBlocking(block bool) {
	m.block = block
}

// DetectionsFromCamera returns the pre-configured detections or error.
func (m *MockVision) DetectionsFromCamera(
	ctx context.Context, cameraName string, extra map[string]interface{},
) ([]objectdetection.Detection, error) {
	m.LastCameraName = cameraName
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.detections, nil
}

// MockCamera is a test stand-in for the camera collaborator. The component
// only resolves the handle, so no method bodies are needed.
type MockCamera struct {
	camera.Camera
}

// NewMockCamera creates a new MockCamera instance.
func NewMockCamera() *MockCamera {
	return &MockCamera{}
}

// MockDetection is a fixed detection result with a label and a score.
type MockDetection struct {
	objectdetection.Detection

	label string
	score float64
}

// NewMockDetection creates a detection with the given class label and confidence.
func NewMockDetection(label string, score float64) *MockDetection {
	return &MockDetection{label: label, score: score}
}

// Label returns the detection's class label.
func (d *MockDetection) Label() string { return d.label }

// Score returns the detection's confidence score.
func (d *MockDetection) Score() float64 { return d.score }
