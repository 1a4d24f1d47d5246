package core

import (
	"github.com/unascribed/FlexVer/go/flexver"
)

// PackFormat relates a resource pack_format number to the range of game
// versions that accept it.
type PackFormat struct {
	Format  int
	MinGame string
	MaxGame string
}

// PackFormats lists released resource pack formats in ascending order.
// Formats missing from the list (10, 14, ...) were snapshot-only.
var PackFormats = []PackFormat{
	{1, "1.6.1", "1.8.9"},
	{2, "1.9", "1.10.2"},
	{3, "1.11", "1.12.2"},
	{4, "1.13", "1.14.4"},
	{5, "1.15", "1.16.1"},
	{6, "1.16.2", "1.16.5"},
	{7, "1.17", "1.17.1"},
	{8, "1.18", "1.18.2"},
	{9, "1.19", "1.19.2"},
	{11, "1.19.3", "1.19.3"},
	{12, "1.19.4", "1.19.4"},
	{13, "1.20", "1.20.1"},
	{15, "1.20.2", "1.20.2"},
	{18, "1.20.3", "1.20.4"},
	{22, "1.20.5", "1.20.6"},
	{34, "1.21", "1.21.1"},
	{42, "1.21.2", "1.21.3"},
	{46, "1.21.4", "1.21.4"},
}

// LookupFormat returns the catalog entry for a pack_format number.
func LookupFormat(format int) (PackFormat, bool) {
	for _, pf := range PackFormats {
		if pf.Format == format {
			return pf, true
		}
	}
	return PackFormat{}, false
}

// FormatForGameVersion returns the pack format a game version expects.
func FormatForGameVersion(version string) (PackFormat, bool) {
	for _, pf := range PackFormats {
		if flexver.Compare(version, pf.MinGame) >= 0 && flexver.Compare(version, pf.MaxGame) <= 0 {
			return pf, true
		}
	}
	return PackFormat{}, false
}

// LatestFormat returns the newest catalog entry.
func LatestFormat() PackFormat {
	return PackFormats[len(PackFormats)-1]
}

// GameRange renders the version span for display.
func (p PackFormat) GameRange() string {
	if p.MinGame == p.MaxGame {
		return p.MinGame
	}
	return p.MinGame + " - " + p.MaxGame
}
