package header

// RefreshState is the gesture-driven pull-to-refresh latch.
type RefreshState int

const (
	RefreshIdle RefreshState = iota
	RefreshTriggered
)

func (s RefreshState) String() string {
	switch s {
	case RefreshIdle:
		return "idle"
	case RefreshTriggered:
		return "triggered"
	}
	return "unknown"
}

// RefreshController watches the offset stream and fires once per pull when
// the offset reaches the trigger distance. It does not run the refresh
// itself; OnRefresh hands that to the host.
type RefreshController struct {
	distance float64
	enabled  bool

	state  RefreshState
	frozen bool

	// OnRefresh is called exactly once per pull gesture.
	OnRefresh func()
}

// NewRefreshController returns an Idle controller. A disabled controller
// never triggers.
func NewRefreshController(distance float64, enabled bool) *RefreshController {
	return &RefreshController{distance: distance, enabled: enabled}
}

// Update feeds one offset sample and reports whether it fired the trigger.
// Only two exact conditions cause a transition: offset == 0 unfreezes and
// returns to Idle, offset >= distance while unfrozen triggers.
func (rc *RefreshController) Update(offset float64) bool {
	if offset == 0 {
		rc.frozen = false
		rc.state = RefreshIdle
	}
	if !rc.enabled {
		return false
	}
	if offset >= rc.distance && !rc.frozen {
		rc.frozen = true
		rc.state = RefreshTriggered
		if rc.OnRefresh != nil {
			rc.OnRefresh()
		}
		return true
	}
	return false
}

// Complete is called by the host when its refresh operation finished.
// The freeze stays in place until the offset returns to the baseline so a
// pull that is still held cannot re-trigger.
func (rc *RefreshController) Complete() {
	rc.state = RefreshIdle
}

// Configure changes the trigger distance and enabled flag without touching
// the current latch.
func (rc *RefreshController) Configure(distance float64, enabled bool) {
	rc.distance = distance
	rc.enabled = enabled
}

func (rc *RefreshController) State() RefreshState { return rc.state }
func (rc *RefreshController) Triggered() bool     { return rc.state == RefreshTriggered }
func (rc *RefreshController) Frozen() bool        { return rc.frozen }
