package wizard

// Step is one page of the launch wizard.
type Step int

const (
	StepToken Step = iota
	StepCurve
	StepAllocation
	StepVesting
	StepLaunchpad
	StepLiquidity
	StepPreview
)

var stepNames = []string{"Token", "Curve", "Allocation", "Vesting", "Launchpad", "Liquidity", "Preview"}

// Steps returns all steps in order.
func Steps() []Step {
	steps := make([]Step, len(stepNames))
	for i := range stepNames {
		steps[i] = Step(i)
	}
	return steps
}

// StepCount is the number of wizard pages.
func StepCount() int {
	return len(stepNames)
}

// String returns the step title.
func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "Unknown"
	}
	return stepNames[s]
}
