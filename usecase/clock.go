package usecase

import "time"

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now
