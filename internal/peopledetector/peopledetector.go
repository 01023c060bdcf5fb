// Package peopledetector implements a Viam sensor component that reports
// whether a person is currently visible. It holds no detection logic of its
// own: each reading asks a configured vision service for detections from a
// configured camera and reduces the result to a single 0/1 flag.
package peopledetector

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/rdk/components/camera"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"go.viam.com/rdk/services/vision"
	"go.viam.com/rdk/spatialmath"
)

// Model is the full model identifier this component registers under.
var Model = resource.NewModel("mta", "2025-sensor-detector", "people-detector")

// detectionTimeout bounds a single detections call to the vision service.
const detectionTimeout = 5 * time.Second

// personLabel is the detection class that counts as a person, compared
// case-insensitively.
const personLabel = "person"

// ErrUnimplemented is returned by the operations this sensor does not support.
var ErrUnimplemented = errors.New("not implemented")

var (
	_ sensor.Sensor   = (*peopleDetector)(nil)
	_ resource.Shaped = (*peopleDetector)(nil)
)

func init() {
	resource.RegisterComponent(sensor.API, Model, resource.Registration[sensor.Sensor, *Config]{
		Constructor: newPeopleDetector,
	})
}

// peopleDetector holds the resolved collaborator handles and the effective
// confidence threshold for one configured instance.
type peopleDetector struct {
	resource.Named
	logger logging.Logger

	mu         sync.Mutex
	cameraName string
	confidence float64
	vision     vision.Service
	camera     camera.Camera
}

// newPeopleDetector builds an instance and applies its initial
// configuration. A resolution failure means no instance is returned.
func newPeopleDetector(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (sensor.Sensor, error) {
	pd := &peopleDetector{
		Named:  conf.ResourceName().AsNamed(),
		logger: logger,
	}
	if err := pd.Reconfigure(ctx, deps, conf); err != nil {
		return nil, err
	}
	return pd, nil
}

// Reconfigure replaces the held configuration and collaborator handles.
// Both dependency lookups complete before any field is written, so a
// failed reconfigure leaves the previous state fully intact.
func (pd *peopleDetector) Reconfigure(
	ctx context.Context, deps resource.Dependencies, conf resource.Config,
) error {
	cfg, err := resource.NativeConfig[*Config](conf)
	if err != nil {
		return err
	}

	cameraName := cfg.cameraName()
	visionService := cfg.visionService()

	vis, err := vision.FromDependencies(deps, visionService)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve vision service %q", visionService)
	}
	cam, err := camera.FromDependencies(deps, cameraName)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve camera %q", cameraName)
	}

	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.cameraName = cameraName
	pd.confidence = cfg.confidence()
	pd.vision = vis
	pd.camera = cam

	return nil
}

// Readings asks the vision service for detections from the configured
// camera and reports {"person_detected": 0 or 1}. A person counts when any
// detection is labeled "person" (case-insensitive) at or above the
// configured confidence. Collaborator failures are logged and returned
// unchanged; nothing is cached between calls.
func (pd *peopleDetector) Readings(
	ctx context.Context, extra map[string]interface{},
) (map[string]interface{}, error) {
	pd.mu.Lock()
	vis := pd.vision
	cameraName := pd.cameraName
	threshold := pd.confidence
	pd.mu.Unlock()

	if vis == nil {
		return nil, errors.New("vision service not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, detectionTimeout)
	defer cancel()

	pd.logger.Debugf("getting detections from camera %q", cameraName)
	detections, err := vis.DetectionsFromCamera(ctx, cameraName, extra)
	if err != nil {
		pd.logger.Errorw("failed to get detections", "camera", cameraName, "error", err)
		return nil, err
	}

	personDetected := 0
	for _, d := range detections {
		if strings.EqualFold(d.Label(), personLabel) && d.Score() >= threshold {
			personDetected = 1
			break
		}
	}

	pd.logger.Debugf("processed %d detections", len(detections))
	return map[string]interface{}{"person_detected": personDetected}, nil
}

// DoCommand is not supported by this sensor.
func (pd *peopleDetector) DoCommand(
	ctx context.Context, cmd map[string]interface{},
) (map[string]interface{}, error) {
	pd.logger.Error("DoCommand is not implemented")
	return nil, ErrUnimplemented
}

// Geometries is not supported by this sensor.
func (pd *peopleDetector) Geometries(
	ctx context.Context, extra map[string]interface{},
) ([]spatialmath.Geometry, error) {
	pd.logger.Error("Geometries is not implemented")
	return nil, ErrUnimplemented
}

// Close releases the held collaborator handles. The handles belong to the
// host, so there is nothing to shut down beyond dropping them.
func (pd *peopleDetector) Close(ctx context.Context) error {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	pd.vision = nil
	pd.camera = nil
	return nil
}
