package widget

import (
	"net/url"
	"strings"

	"rating_widget/internal/domain/entity"
)

// LinkURL returns the page opened when an interactive widget is activated:
// the product page when the record names a product, the vendor page
// otherwise. Non-interactive widgets have no link.
func LinkURL(siteURL string, record entity.RatingRecord) string {
	if !record.Interactive {
		return ""
	}

	base := strings.TrimRight(siteURL, "/")

	if id := strings.TrimSpace(record.ProductID); id != "" {
		return base + "/products/" + url.PathEscape(id)
	}

	if vendor := strings.TrimSpace(record.Vendor); vendor != "" {
		return base + "/vendor/" + url.PathEscape(vendor)
	}

	return base
}
