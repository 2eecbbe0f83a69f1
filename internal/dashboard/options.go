package dashboard

import "fmt"

// Options selects the upcoming-courses policy. The two dashboard layouts
// differ only here.
type Options struct {
	// UpcomingLimit caps the upcoming list. <=0 means DefaultUpcomingLimit.
	UpcomingLimit int
	// UpcomingIncludeToday keeps courses that start on the current day.
	// When false only courses after the start of today are kept.
	UpcomingIncludeToday bool
}

const DefaultUpcomingLimit = 5

// OverviewOptions is the full overview page: strictly after today, 5 entries.
func OverviewOptions() Options {
	return Options{UpcomingLimit: DefaultUpcomingLimit}
}

// CompactOptions is the compact page: today onwards, 4 entries.
func CompactOptions() Options {
	return Options{UpcomingLimit: 4, UpcomingIncludeToday: true}
}

// OptionsForVariant maps a variant name ("overview", "compact") to its preset.
// The empty name is the overview.
func OptionsForVariant(name string) (Options, error) {
	switch name {
	case "", "overview":
		return OverviewOptions(), nil
	case "compact":
		return CompactOptions(), nil
	}
	return Options{}, fmt.Errorf("dashboard: unknown variant %q", name)
}

func (o Options) withDefaults() Options {
	if o.UpcomingLimit <= 0 {
		o.UpcomingLimit = DefaultUpcomingLimit
	}
	return o
}
