package entity

import "rating_widget/internal/domain/value"

// RatingRecord входные данные одного экземпляра виджета. Поставляется
// вызывающей стороной и не изменяется во время рендера.
type RatingRecord struct {
	Grade         value.Grade   `json:"grade" yaml:"grade"`
	LabelOverride string        `json:"labelOverride,omitempty" yaml:"labelOverride"`
	Vendor        string        `json:"vendor" yaml:"vendor"`
	Product       string        `json:"product" yaml:"product"`
	SamplesCount  int           `json:"samplesCount" yaml:"samplesCount"`
	LastTestDate  string        `json:"lastTestDate" yaml:"lastTestDate"`
	Variant       value.Variant `json:"variant" yaml:"variant"`
	LogoURL       string        `json:"logoUrl,omitempty" yaml:"logoUrl"`
	Interactive   bool          `json:"interactive,omitempty" yaml:"interactive"`
	Horizontal    bool          `json:"horizontal,omitempty" yaml:"horizontal"` // только для mobile
	ProductID     string        `json:"productId,omitempty" yaml:"productId"`
	StarRating    float64       `json:"starRating,omitempty" yaml:"starRating"`
	ReviewCount   int           `json:"reviewCount,omitempty" yaml:"reviewCount"`
}

// HasStars reports whether the record carries a review score to show.
func (r RatingRecord) HasStars() bool {
	return r.StarRating > 0 || r.ReviewCount > 0
}
