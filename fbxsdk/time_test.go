package fbxsdk

import "testing"

var timeModeTests = []struct {
	fps  float64
	mode TimeMode
}{
	{24, TimeModeFrames24},
	{120, TimeModeFrames120},
	{100, TimeModeFrames100},
	{60, TimeModeFrames60},
	{50, TimeModeFrames50},
	{48, TimeModeFrames48},
	{30, TimeModeFrames30},
	{29.97, TimeModeNTSCFullFrame},
	{25, TimeModePAL},
	{1000, TimeModeFrames1000},
	{23.976, TimeModeFilmFullFrame},
	{96, TimeModeFrames96},
	{72, TimeModeFrames72},
	{59.94, TimeModeFrames59dot94},
	{12, TimeModeCustom},
	{31, TimeModeCustom},
	{23.98, TimeModeCustom},
	{0, TimeModeCustom},
}

func TestTimeModeFromRate(t *testing.T) {
	for _, test := range timeModeTests {
		if mode := TimeModeFromRate(test.fps); mode != test.mode {
			t.Errorf("TimeModeFromRate(%v)=%v; expected %v", test.fps, mode, test.mode)
		}
	}
}

func TestTimeModeFrameRateRoundTrip(t *testing.T) {
	for _, test := range timeModeTests {
		if test.mode == TimeModeCustom {
			continue
		}
		if rate := test.mode.FrameRate(); !sysIsEqual(rate, test.fps) {
			t.Errorf("%v.FrameRate()=%v; expected %v", test.mode, rate, test.fps)
		}
	}
}

func TestTimeFromSeconds(t *testing.T) {
	if got := TimeFromSeconds(1); got != Time(TicksPerSecond) {
		t.Errorf("TimeFromSeconds(1)=%d; expected %d", got, TicksPerSecond)
	}
	if got := TimeFromSeconds(0); got != 0 {
		t.Errorf("TimeFromSeconds(0)=%d; expected 0", got)
	}
	if got := TimeFromSeconds(0.5).Seconds(); got != 0.5 {
		t.Errorf("round trip of 0.5s gave %v", got)
	}
}

func TestTimeFromFrame(t *testing.T) {
	if got := TimeFromFrame(24, TimeModeFrames24, 0); got != Time(TicksPerSecond) {
		t.Errorf("frame 24 at 24fps = %d ticks; expected %d", got, TicksPerSecond)
	}
	if got := TimeFromFrame(10, TimeModeCustom, 10); got != Time(TicksPerSecond) {
		t.Errorf("frame 10 at custom 10fps = %d ticks; expected %d", got, TicksPerSecond)
	}
}
