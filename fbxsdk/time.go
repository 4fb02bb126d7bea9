package fbxsdk

import (
	"math"
)

// TicksPerSecond is the FBX time resolution (KTime units per second).
const TicksPerSecond int64 = 46186158000

// Time is an FBX timestamp in KTime ticks.
type Time int64

func TimeFromSeconds(s float64) Time {
	return Time(math.Round(s * float64(TicksPerSecond)))
}

func (t Time) Seconds() float64 {
	return float64(t) / float64(TicksPerSecond)
}

// TimeFromFrame places a frame on the tick timeline for the given time
// mode. customRate is consulted only for TimeModeCustom.
func TimeFromFrame(frame float64, mode TimeMode, customRate float64) Time {
	rate := mode.FrameRate()
	if mode == TimeModeCustom {
		rate = customRate
	}
	if rate <= 0 {
		rate = 24
	}
	return TimeFromSeconds(frame / rate)
}

type TimeSpan struct {
	Start Time
	Stop  Time
}

// TimeMode is the fixed FBX frame-rate enumeration. Values match the
// SDK's EMode ordinals, which end up in the written file.
type TimeMode int32

const (
	TimeModeDefault       TimeMode = 0
	TimeModeFrames120     TimeMode = 1
	TimeModeFrames100     TimeMode = 2
	TimeModeFrames60      TimeMode = 3
	TimeModeFrames50      TimeMode = 4
	TimeModeFrames48      TimeMode = 5
	TimeModeFrames30      TimeMode = 6
	TimeModeFrames30Drop  TimeMode = 7
	TimeModeNTSCDropFrame TimeMode = 8
	TimeModeNTSCFullFrame TimeMode = 9
	TimeModePAL           TimeMode = 10
	TimeModeFrames24      TimeMode = 11
	TimeModeFrames1000    TimeMode = 12
	TimeModeFilmFullFrame TimeMode = 13
	TimeModeCustom        TimeMode = 14
	TimeModeFrames96      TimeMode = 15
	TimeModeFrames72      TimeMode = 16
	TimeModeFrames59dot94 TimeMode = 17
)

func (m TimeMode) FrameRate() float64 {
	switch m {
	case TimeModeFrames120:
		return 120
	case TimeModeFrames100:
		return 100
	case TimeModeFrames60:
		return 60
	case TimeModeFrames50:
		return 50
	case TimeModeFrames48:
		return 48
	case TimeModeFrames30, TimeModeFrames30Drop:
		return 30
	case TimeModeNTSCDropFrame, TimeModeNTSCFullFrame:
		return 29.97
	case TimeModePAL:
		return 25
	case TimeModeDefault, TimeModeFrames24:
		return 24
	case TimeModeFrames1000:
		return 1000
	case TimeModeFilmFullFrame:
		return 23.976
	case TimeModeFrames96:
		return 96
	case TimeModeFrames72:
		return 72
	case TimeModeFrames59dot94:
		return 59.94
	}
	return 0
}

func sysIsEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// TimeModeFromRate matches a playback rate against the fixed industry
// frame rates, first exact match wins. Anything else is Custom with the
// literal rate carried alongside in the global settings.
func TimeModeFromRate(fps float64) TimeMode {
	switch {
	case sysIsEqual(fps, 24.0):
		return TimeModeFrames24
	case sysIsEqual(fps, 120.0):
		return TimeModeFrames120
	case sysIsEqual(fps, 100.0):
		return TimeModeFrames100
	case sysIsEqual(fps, 60.0):
		return TimeModeFrames60
	case sysIsEqual(fps, 50.0):
		return TimeModeFrames50
	case sysIsEqual(fps, 48.0):
		return TimeModeFrames48
	case sysIsEqual(fps, 30.0):
		return TimeModeFrames30
	case sysIsEqual(fps, 29.97):
		return TimeModeNTSCFullFrame
	case sysIsEqual(fps, 25.0):
		return TimeModePAL
	case sysIsEqual(fps, 1000.0):
		return TimeModeFrames1000
	case sysIsEqual(fps, 23.976):
		return TimeModeFilmFullFrame
	case sysIsEqual(fps, 96.0):
		return TimeModeFrames96
	case sysIsEqual(fps, 72.0):
		return TimeModeFrames72
	case sysIsEqual(fps, 59.94):
		return TimeModeFrames59dot94
	}
	return TimeModeCustom
}
