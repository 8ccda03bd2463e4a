package widget_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rating_widget/internal/domain/entity"
	"rating_widget/internal/domain/service/widget"
)

func TestLinkURL(t *testing.T) {
	rq := require.New(t)

	const site = "https://finnrick.com/"

	testCases := []struct {
		name   string
		record entity.RatingRecord
		link   string
	}{
		{
			name:   "Not interactive",
			record: entity.RatingRecord{Vendor: "Polaris", ProductID: "p-1"},
			link:   "",
		},
		{
			name:   "Product page",
			record: entity.RatingRecord{Vendor: "Polaris", ProductID: "sema 5mg", Interactive: true},
			link:   "https://finnrick.com/products/sema%205mg",
		},
		{
			name:   "Vendor page",
			record: entity.RatingRecord{Vendor: "Polaris Peptides", Interactive: true},
			link:   "https://finnrick.com/vendor/Polaris%20Peptides",
		},
		{
			name:   "Site root",
			record: entity.RatingRecord{Interactive: true},
			link:   "https://finnrick.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.link, widget.LinkURL(site, tc.record))
		})
	}
}
