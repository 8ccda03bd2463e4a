package widget

import "math"

const MaxStars = 5

type StarFill int

const (
	StarEmpty StarFill = iota
	StarHalf
	StarFull
)

func (f StarFill) String() string {
	switch f {
	case StarFull:
		return "full"
	case StarHalf:
		return "half"
	default:
		return "empty"
	}
}

// Stars раскладывает оценку 0..5 на пять позиций. Любая дробная часть
// даёт половину звезды, как и в исходных виджетах.
func Stars(rating float64) [MaxStars]StarFill {
	var stars [MaxStars]StarFill

	if math.IsNaN(rating) || rating <= 0 {
		return stars
	}

	rating = math.Min(rating, MaxStars)
	full := int(math.Floor(rating))
	half := rating != math.Floor(rating)

	for i := range stars {
		switch {
		case i < full:
			stars[i] = StarFull
		case i == full && half:
			stars[i] = StarHalf
		}
	}

	return stars
}
