package config

//go:generate go tool go-enum --marshal --names

// Specification of a named page size preset.
// ENUM(a4, a5, letter, legal)
type PageSizePreset int

// Dimensions returns the preset's width and height in portrait orientation.
func (p PageSizePreset) Dimensions() (width, height float64) {
	// millimeters
	switch p {
	case PageSizePresetA4:
		return 210, 297
	case PageSizePresetA5:
		return 148, 210
	case PageSizePresetLetter:
		return 215.9, 279.4
	case PageSizePresetLegal:
		return 215.9, 355.6
	default:
		// this should never happen
		panic("unsupported page size preset requested")
	}
}
