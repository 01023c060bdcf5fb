// Command module starts the people-detector modular resource and serves it
// to viam-server over the module socket.
package main

import (
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/module"
	"go.viam.com/rdk/resource"

	"github.com/mta-robotics/people-detector/internal/peopledetector"
)

func main() {
	module.ModularMain(resource.APIModel{API: sensor.API, Model: peopledetector.Model})
}
