// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

type GradeStyle struct {
	Grade      string `json:"grade"`
	Color      string `json:"color"`
	ColorHex   string `json:"colorHex"`
	GradientTo string `json:"gradientTo"`
	Label      string `json:"label"`
	CardLabel  string `json:"cardLabel"`
	Rank       int    `json:"rank"`
}

type SizeClassSet struct {
	Card       string `json:"card"`
	Badge      string `json:"badge"`
	RatingText string `json:"ratingText"`
	DetailText string `json:"detailText"`
	Star       string `json:"star"`
	Logo       string `json:"logo"`
}

type DisplayConfig struct {
	Variant     string       `json:"variant"`
	ShowHeader  bool         `json:"showHeader"`
	ShowFooter  bool         `json:"showFooter"`
	ShowTooltip bool         `json:"showTooltip"`
	ShowDetails bool         `json:"showDetails"`
	Orientation string       `json:"orientation"`
	BadgeSize   string       `json:"badgeSize"`
	SizeClasses SizeClassSet `json:"sizeClasses"`
}

type ResolveRequest struct {
	Grade         string `json:"grade" validate:"required,max=8"`
	LabelOverride string `json:"labelOverride" validate:"max=64"`
	Variant       string `json:"variant" validate:"required"`
}

type ResolvedDisplay struct {
	Grade       string       `json:"grade"`
	Color       string       `json:"color"`
	ColorHex    string       `json:"colorHex"`
	GradientTo  string       `json:"gradientTo"`
	Label       string       `json:"label"`
	SizeClasses SizeClassSet `json:"sizeClasses"`
	Orientation string       `json:"orientation"`
	BadgeSize   string       `json:"badgeSize"`
	Fallback    bool         `json:"fallback"`
}

// RenderRequest запись рейтинга для рендера одного виджета.
type RenderRequest struct {
	Grade         string  `json:"grade" validate:"required,max=8"`
	LabelOverride string  `json:"labelOverride" validate:"max=64"`
	Vendor        string  `json:"vendor" validate:"required,max=200"`
	Product       string  `json:"product" validate:"max=200"`
	SamplesCount  int     `json:"samplesCount" validate:"gte=0"`
	LastTestDate  string  `json:"lastTestDate" validate:"max=64"`
	Variant       string  `json:"variant" validate:"required"`
	LogoURL       string  `json:"logoUrl" validate:"omitempty,url"`
	Interactive   bool    `json:"interactive"`
	Horizontal    bool    `json:"horizontal"`
	ProductID     string  `json:"productId" validate:"max=128"`
	StarRating    float64 `json:"starRating" validate:"gte=0,lte=5"`
	ReviewCount   int     `json:"reviewCount" validate:"gte=0"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
