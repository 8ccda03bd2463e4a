package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/value"
	"rating_widget/internal/render"
	"rating_widget/pkg/errcodes"
	"rating_widget/pkg/httpx/reply"
	"rating_widget/pkg/httpx/req"
	"rating_widget/pkg/lox"
	"rating_widget/pkg/rest"
)

// Те же ограничения, что и в rest.RenderRequest.
const (
	maxLabelLen  = 64
	maxVendorLen = 200
)

type cardService interface {
	Grades() []entity.GradeStyle
	Variants() []entity.DisplayConfig
	Resolve(context.Context, value.Grade, string, value.Variant) (entity.ResolvedDisplay, error)
	Badge(context.Context, value.Grade, string, value.Variant) ([]byte, error)
	Render(context.Context, entity.RatingRecord, render.Format) ([]byte, error)
}

type WidgetServer struct {
	cardService cardService
}

func NewWidgetServer(cardService cardService) WidgetServer {
	return WidgetServer{
		cardService: cardService,
	}
}

func (s WidgetServer) getV1Grades(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, lox.Map(s.cardService.Grades(), newRESTGradeStyle))

	return nil
}

func (s WidgetServer) getV1Variants(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, lox.Map(s.cardService.Variants(), newRESTDisplayConfig))

	return nil
}

func (s WidgetServer) postV1Resolve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ResolveRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	variant, err := parseVariant(request.Variant)
	if err != nil {
		return err
	}

	display, err := s.cardService.Resolve(ctx, parseGrade(request.Grade), request.LabelOverride, variant)
	if err != nil {
		return fmt.Errorf("cardService.Resolve: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTResolvedDisplay(display))

	return nil
}

func (s WidgetServer) postV1WidgetsRender(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return fmt.Errorf("render.ParseFormat: %w", err)
	}

	var request rest.RenderRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	record, err := newDomainRatingRecord(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainRatingRecord: %w", err),
			failure.WithCode(errcodes.InvalidVariant),
			failure.WithDescription(err.Error()),
		)
	}

	out, err := s.cardService.Render(ctx, record, format)
	if err != nil {
		return fmt.Errorf("cardService.Render: %w", err)
	}

	reply.Raw(ctx, w, http.StatusOK, format.ContentType(), out)

	return nil
}

func (s WidgetServer) getV1Widget(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	variant, err := parseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		return err
	}

	record, err := newRecordFromQuery(r.URL.Query(), variant)
	if err != nil {
		return err
	}

	out, err := s.cardService.Render(ctx, record, render.FormatHTML)
	if err != nil {
		return fmt.Errorf("cardService.Render: %w", err)
	}

	reply.Raw(ctx, w, http.StatusOK, render.FormatHTML.ContentType(), out)

	return nil
}

func (s WidgetServer) getV1Badge(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	variant := value.VariantDesktop

	if v := query.Get("variant"); v != "" {
		parsed, err := parseVariant(v)
		if err != nil {
			return err
		}

		variant = parsed
	}

	label, err := queryLabel(query)
	if err != nil {
		return err
	}

	svg, err := s.cardService.Badge(ctx, parseGrade(chi.URLParam(r, "grade")), label, variant)
	if err != nil {
		return fmt.Errorf("cardService.Badge: %w", err)
	}

	reply.Raw(ctx, w, http.StatusOK, render.FormatSVG.ContentType(), svg)

	return nil
}

func parseVariant(s string) (value.Variant, error) {
	variant, err := value.ParseVariant(s)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseVariant: %w", err),
			failure.WithCode(errcodes.InvalidVariant),
			failure.WithDescription(err.Error()),
		)
	}

	return variant, nil
}

func newRecordFromQuery(q url.Values, variant value.Variant) (entity.RatingRecord, error) {
	label, err := queryLabel(q)
	if err != nil {
		return entity.RatingRecord{}, err
	}

	vendor := strings.TrimSpace(q.Get("vendor"))
	if vendor == "" || utf8.RuneCountInString(vendor) > maxVendorLen {
		return entity.RatingRecord{}, invalidQueryParam(
			"vendor", vendor, fmt.Sprintf("vendor is required and must be at most %d characters", maxVendorLen),
		)
	}

	samples, err := queryInt(q, "samples")
	if err != nil {
		return entity.RatingRecord{}, err
	}

	reviews, err := queryInt(q, "reviews")
	if err != nil {
		return entity.RatingRecord{}, err
	}

	var stars float64

	if s := q.Get("stars"); s != "" {
		stars, err = strconv.ParseFloat(s, 64)
		if err != nil || stars < 0 || stars > 5 {
			return entity.RatingRecord{}, invalidQueryParam("stars", s, "stars must be a number from 0 to 5")
		}
	}

	interactive, _ := strconv.ParseBool(q.Get("interactive"))
	horizontal, _ := strconv.ParseBool(q.Get("horizontal"))

	return entity.RatingRecord{
		Grade:         parseGrade(q.Get("grade")),
		LabelOverride: label,
		Vendor:        vendor,
		Product:       strings.TrimSpace(q.Get("product")),
		SamplesCount:  samples,
		LastTestDate:  strings.TrimSpace(q.Get("date")),
		Variant:       variant,
		LogoURL:       q.Get("logo"),
		Interactive:   interactive,
		Horizontal:    horizontal,
		ProductID:     strings.TrimSpace(q.Get("productId")),
		StarRating:    stars,
		ReviewCount:   reviews,
	}, nil
}

func queryInt(q url.Values, name string) (int, error) {
	s := q.Get(name)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, invalidQueryParam(name, s, name+" must be a non-negative number")
	}

	return n, nil
}

func queryLabel(q url.Values) (string, error) {
	label := strings.TrimSpace(q.Get("label"))
	if utf8.RuneCountInString(label) > maxLabelLen {
		return "", invalidQueryParam("label", label, fmt.Sprintf("label must be at most %d characters", maxLabelLen))
	}

	return label, nil
}

func invalidQueryParam(name, v, description string) error {
	if len(v) > maxLabelLen {
		v = v[:maxLabelLen] + "..."
	}

	return failure.NewInvalidArgumentError(
		fmt.Sprintf("invalid query parameter %s=%q", name, v),
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(description),
	)
}
