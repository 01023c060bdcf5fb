package peopledetector

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("valid config without confidence", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1"}

		deps, optional, err := cfg.Validate("")
		if err != nil {
			t.Fatalf("expected valid config, got error: %v", err)
		}
		if len(deps) != 2 || deps[0] != "vis1" || deps[1] != "cam1" {
			t.Errorf("expected dependencies [vis1 cam1], got %v", deps)
		}
		if optional != nil {
			t.Errorf("expected no optional dependencies, got %v", optional)
		}
	})

	t.Run("valid config with confidence", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: 0.6}

		deps, _, err := cfg.Validate("")
		if err != nil {
			t.Fatalf("expected valid config, got error: %v", err)
		}
		if len(deps) != 2 || deps[0] != "vis1" || deps[1] != "cam1" {
			t.Errorf("expected dependencies [vis1 cam1], got %v", deps)
		}
	})

	t.Run("confidence boundaries are valid", func(t *testing.T) {
		for _, confidence := range []float64{0, 1} {
			cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: confidence}
			if _, _, err := cfg.Validate(""); err != nil {
				t.Errorf("expected confidence %v to be valid, got error: %v", confidence, err)
			}
		}
	})

	t.Run("missing camera_name", func(t *testing.T) {
		cfg := &Config{VisionService: "vis1"}

		deps, _, err := cfg.Validate("")
		if !errors.Is(err, ErrAttributeMissing) {
			t.Errorf("expected ErrAttributeMissing, got %v", err)
		}
		if deps != nil {
			t.Errorf("expected no dependencies on failure, got %v", deps)
		}
	})

	t.Run("missing vision_service", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1"}

		deps, _, err := cfg.Validate("")
		if !errors.Is(err, ErrAttributeMissing) {
			t.Errorf("expected ErrAttributeMissing, got %v", err)
		}
		if deps != nil {
			t.Errorf("expected no dependencies on failure, got %v", deps)
		}
	})

	t.Run("camera_name is not a string", func(t *testing.T) {
		cfg := &Config{CameraName: 3.0, VisionService: "vis1"}

		if _, _, err := cfg.Validate(""); !errors.Is(err, ErrAttributeType) {
			t.Errorf("expected ErrAttributeType, got %v", err)
		}
	})

	t.Run("vision_service is not a string", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: true}

		if _, _, err := cfg.Validate(""); !errors.Is(err, ErrAttributeType) {
			t.Errorf("expected ErrAttributeType, got %v", err)
		}
	})

	t.Run("confidence is not a number", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: "high"}

		if _, _, err := cfg.Validate(""); !errors.Is(err, ErrAttributeType) {
			t.Errorf("expected ErrAttributeType, got %v", err)
		}
	})

	t.Run("confidence out of range", func(t *testing.T) {
		for _, confidence := range []float64{-0.1, 1.5} {
			cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: confidence}
			if _, _, err := cfg.Validate(""); !errors.Is(err, ErrConfidenceRange) {
				t.Errorf("expected ErrConfidenceRange for %v, got %v", confidence, err)
			}
		}
	})

	t.Run("integer confidence is accepted", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: 1}

		if _, _, err := cfg.Validate(""); err != nil {
			t.Errorf("expected integer confidence to be valid, got error: %v", err)
		}
	})
}

func TestConfigConfidence(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1"}
		if got := cfg.confidence(); got != DefaultConfidence {
			t.Errorf("expected default confidence %v, got %v", DefaultConfidence, got)
		}
	})

	t.Run("uses configured value", func(t *testing.T) {
		cfg := &Config{CameraName: "cam1", VisionService: "vis1", ConfidenceValue: 0.6}
		if got := cfg.confidence(); got != 0.6 {
			t.Errorf("expected confidence 0.6, got %v", got)
		}
	})
}
