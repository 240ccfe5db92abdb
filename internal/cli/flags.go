package cli

import "gotest1/internal/config"

// Flags holds command-line flags
type Flags struct {
	LogPath    string
	Count      int
	TestPath   string
	NameFilter string
	NoSave     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		LogPath:    f.LogPath,
		Count:      f.Count,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		NoSave:     f.NoSave,
	}
}
