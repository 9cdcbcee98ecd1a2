package tilemap

import "image/color"

// Color returns a flat preview color for t, used where the tile set image is
// not available.
func (t Tile) Color() color.RGBA {
	switch {
	case t == Grass1:
		return color.RGBA{52, 168, 60, 255}
	case t == Grass2:
		return color.RGBA{70, 190, 76, 255}
	case t.IsGrass():
		return color.RGBA{60, 180, 70, 255}
	case t == Beach:
		return color.RGBA{232, 214, 150, 255}
	case t.IsSand():
		return color.RGBA{218, 196, 128, 255}
	case t.IsWaterDeep():
		return color.RGBA{20, 50, 160, 255}
	case t.IsWaterShallow():
		return color.RGBA{90, 130, 230, 255}
	case t == Void:
		return color.RGBA{255, 0, 0, 255}
	}
	return color.RGBA{0, 0, 0, 255}
}
