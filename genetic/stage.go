package genetic

// Stage is a step of the generational cycle
type Stage uint8

const (
	StageIdle Stage = iota
	StageEvaluating
	StageSelecting
	StageRecombining
	StageMutating
	StageSorting
	StageReplaced
)

var stageNames = [...]string{
	StageIdle:        "idle",
	StageEvaluating:  "evaluating",
	StageSelecting:   "selecting",
	StageRecombining: "recombining",
	StageMutating:    "mutating",
	StageSorting:     "sorting",
	StageReplaced:    "replaced",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}
