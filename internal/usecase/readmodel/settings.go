package readmodel

// Settings holds the per-user presentation and alerting preferences.
type Settings struct {
	Theme     string
	Tolerance int
}
