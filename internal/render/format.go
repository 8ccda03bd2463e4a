package render

import (
	"fmt"
	"strings"

	"rating_widget/internal/domain"
	"rating_widget/pkg/errcodes"
)

type Format string

const (
	FormatHTML     Format = "html"
	FormatSVG      Format = "svg"
	FormatTerminal Format = "terminal"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatSVG, FormatTerminal:
		return f, nil
	case "":
		return FormatHTML, nil
	default:
		return "", domain.NewError(errcodes.InvalidFormat, fmt.Sprintf("unknown render format %q", s))
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml; charset=utf-8"
	case FormatTerminal:
		return "text/plain; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

func (f Format) String() string {
	return string(f)
}
