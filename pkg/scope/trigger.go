package scope

// Trigger is the handle for the trigger subsystem.
type Trigger struct {
	scope *Scope
}

// Force forces a trigger event.
func (t *Trigger) Force() error {
	return t.scope.write("trig_force")
}

// SingleShot arms the scope for a single acquisition.
func (t *Trigger) SingleShot() error {
	return t.scope.write("trig_single")
}

// EdgeLevel queries the edge trigger level in volts.
func (t *Trigger) EdgeLevel() (float64, error) {
	return t.scope.askFloat("trig_edge_level_query")
}

// SetEdgeLevel sets the edge trigger level in volts.
func (t *Trigger) SetEdgeLevel(volts float64) error {
	return t.scope.write("trig_edge_level_set", volts)
}

// Holdoff queries the trigger holdoff in seconds.
func (t *Trigger) Holdoff() (float64, error) {
	return t.scope.askFloat("trig_holdoff_query")
}

// SetHoldoff sets the trigger holdoff in seconds.
func (t *Trigger) SetHoldoff(seconds float64) error {
	return t.scope.write("trig_holdoff_set", seconds)
}
