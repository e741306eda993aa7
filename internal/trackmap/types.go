package trackmap

// WorldCoord is a position in Minecraft world space.
type WorldCoord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Station is a raw station record from the network snapshot. One logical
// station usually appears as several of these, one per platform or track.
type Station struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Dimension  string     `json:"dimension"`
	Location   WorldCoord `json:"location"`
	Angle      float64    `json:"angle"`
	Assembling bool       `json:"assembling"`
}

// Network is the /api/network response. Track and portal geometry is
// present on the wire but unused here, so it is not decoded.
type Network struct {
	Stations []Station `json:"stations"`
}

// Bogie is a coupling point of a rail car, with its own world position.
type Bogie struct {
	Dimension string     `json:"dimension"`
	Location  WorldCoord `json:"location"`
}

// Car is one carriage of a live train. Either bogie may be absent when the
// car is partially out of a dimension or still assembling.
type Car struct {
	ID       int    `json:"id"`
	Leading  *Bogie `json:"leading,omitempty"`
	Trailing *Bogie `json:"trailing,omitempty"`
}

// Train is a raw live train record from the trains snapshot.
type Train struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Owner     string `json:"owner"`
	Cars      []Car  `json:"cars"`
	Backwards bool   `json:"backwards"`
	Stopped   bool   `json:"stopped"`
}

// Trains is the /api/trains response.
type Trains struct {
	Trains []Train `json:"trains"`
}
