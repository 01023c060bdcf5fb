package peopledetector

import (
	"github.com/pkg/errors"
)

// DefaultConfidence is the detection confidence threshold used when the
// config does not set confidence_value.
const DefaultConfidence = 0.8

// Validation failure modes. Wrapped errors carry the attribute name;
// callers can match the class with errors.Is.
var (
	// ErrAttributeMissing is returned when a required config attribute is absent.
	ErrAttributeMissing = errors.New("missing required attribute")

	// ErrAttributeType is returned when a config attribute has the wrong type.
	ErrAttributeType = errors.New("attribute has wrong type")

	// ErrConfidenceRange is returned when confidence_value is outside [0, 1].
	ErrConfidenceRange = errors.New("confidence_value must be between 0 and 1")
)

// Config holds the raw attributes for a people detector. Values arrive
// loosely typed from the machine config; Validate checks them before any
// instance is built, and reconfigure converts them into typed state.
type Config struct {
	CameraName      any `json:"camera_name"`
	VisionService   any `json:"vision_service"`
	ConfidenceValue any `json:"confidence_value,omitempty"`
}

// Validate checks required and optional attributes and returns the
// dependencies this component needs: the vision service first, then the
// camera. It inspects only the config and holds no instance state, so the
// host can call it before construction.
func (cfg *Config) Validate(path string) ([]string, []string, error) {
	cameraName, err := requiredString("camera_name", cfg.CameraName)
	if err != nil {
		return nil, nil, err
	}
	visionService, err := requiredString("vision_service", cfg.VisionService)
	if err != nil {
		return nil, nil, err
	}

	if cfg.ConfidenceValue != nil {
		confidence, ok := asFloat(cfg.ConfidenceValue)
		if !ok {
			return nil, nil, errors.Wrap(ErrAttributeType, "confidence_value must be a number")
		}
		if confidence < 0 || confidence > 1 {
			return nil, nil, ErrConfidenceRange
		}
	}

	return []string{visionService, cameraName}, nil, nil
}

// cameraName returns the configured camera name. The config is assumed
// already validated; a missing or mistyped value yields the empty string.
func (cfg *Config) cameraName() string {
	s, _ := cfg.CameraName.(string)
	return s
}

// visionService returns the configured vision service name under the same
// assumption as cameraName.
func (cfg *Config) visionService() string {
	s, _ := cfg.VisionService.(string)
	return s
}

// confidence returns the configured threshold, or DefaultConfidence when
// the optional attribute is absent.
func (cfg *Config) confidence() float64 {
	if cfg.ConfidenceValue == nil {
		return DefaultConfidence
	}
	v, ok := asFloat(cfg.ConfidenceValue)
	if !ok {
		return DefaultConfidence
	}
	return v
}

// requiredString checks that a required attribute is present and string-typed.
func requiredString(field string, value any) (string, error) {
	if value == nil {
		return "", errors.Wrapf(ErrAttributeMissing, "%s", field)
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.Wrapf(ErrAttributeType, "%s must be a string", field)
	}
	return s, nil
}

// asFloat accepts the numeric representations an attribute map can carry.
// JSON attributes decode to float64; configs built in code may use ints.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
