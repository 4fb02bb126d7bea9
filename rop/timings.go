package rop

import (
	"time"
)

// Timings records where an export session spent its time.
type Timings struct {
	SceneBuild time.Duration
	Animation  time.Duration
	Writing    time.Duration
	Total      time.Duration
}

func (t Timings) String() string {
	return "scene build " + t.SceneBuild.String() +
		", animation " + t.Animation.String() +
		", writing " + t.Writing.String() +
		", total " + t.Total.String()
}
