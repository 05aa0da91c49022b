package history

// Activity is one of the fixed activity type labels understood by location
// history consumers.
type Activity string

const (
	ActivityStill   Activity = "STILL"
	ActivityWalking Activity = "WALKING"
	ActivityRunning Activity = "RUNNING"
	ActivityCycling Activity = "ON_BICYCLE"
	ActivityDriving Activity = "IN_VEHICLE"
	ActivityFlying  Activity = "FLYING"
)

func (a Activity) String() string {
	return string(a)
}

type velocityBand struct {
	// minSpeed is the band's inclusive lower bound in m/s. The upper bound
	// is the next band's lower bound; the last band is unbounded.
	minSpeed float64
	activity Activity
}

// velocityBands is ordered by ascending speed. A mean velocity belongs to
// the highest band whose lower bound it reaches, so a velocity landing
// exactly on a boundary is classified into the faster band.
var velocityBands = []velocityBand{
	{0, ActivityStill},
	{0.3, ActivityWalking},
	{2.5, ActivityRunning},
	{5.0, ActivityCycling},
	{12.0, ActivityDriving},
	{62.5, ActivityFlying},
}

// ClassifyVelocity maps a mean velocity in m/s onto its activity band.
func ClassifyVelocity(velocity float64) Activity {
	activity := velocityBands[0].activity

	for _, band := range velocityBands[1:] {
		if velocity < band.minSpeed {
			break
		}

		activity = band.activity
	}

	return activity
}
