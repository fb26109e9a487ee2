package pac

// ResetTaken re-arms Take for tests.
func ResetTaken() { taken = false }
