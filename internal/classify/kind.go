// Package classify identifies which known game screen a frame shows
package classify

// ScreenKind is the closed set of screens the platform knows how to read.
type ScreenKind int

const (
	KindNone ScreenKind = iota
	KindRelicReward
	KindMissionProgress
)

func (k ScreenKind) String() string {
	switch k {
	case KindRelicReward:
		return "relic_reward"
	case KindMissionProgress:
		return "mission_progress"
	default:
		return "none"
	}
}
